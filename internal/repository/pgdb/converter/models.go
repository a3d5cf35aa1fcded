package converter

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// MovieModel представляет запись таблицы movies в PostgreSQL.
type MovieModel struct {
	ID          int64               `db:"id"`
	Title       string              `db:"title"`
	Genre       string              `db:"genre"`
	Director    string              `db:"director"`
	Cast        string              `db:"cast_list"`
	Description string              `db:"description"`
	Country     string              `db:"country"`
	Year        pgtype.Int4         `db:"release_year"`
	Rating      decimal.NullDecimal `db:"rating"`
}
