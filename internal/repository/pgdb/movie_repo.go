package pgdb

import (
	"context"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/DRSN-tech/movie-recommender/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

const selectMovies = `
	SELECT
		id,
		title,
		COALESCE(genre, ''),
		COALESCE(director, ''),
		COALESCE(cast_list, ''),
		COALESCE(description, ''),
		COALESCE(country, ''),
		release_year,
		rating
	FROM movies
	ORDER BY id
`

// MovieRepo читает каталог из таблицы movies.
type MovieRepo struct {
	db transaction.Transactional
}

func NewMovieRepo(db transaction.Transactional) *MovieRepo {
	return &MovieRepo{db: db}
}

func (m *MovieRepo) Name() string {
	return "postgres:movies"
}

// LoadMovies читает все строки в одной read-only транзакции, чтобы каталог был согласованным срезом.
func (m *MovieRepo) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, m.db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	pgxTx, ok := tx.Transaction().(pgx.Tx)
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrTransactionNotFound)
	}

	models, err := m.selectAll(tr.WithTx(ctx, pgxTx))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToArrDomain(models)
}

func (m *MovieRepo) selectAll(ctx context.Context) ([]converter.MovieModel, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectMovies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]converter.MovieModel, 0)
	for rows.Next() {
		var model converter.MovieModel
		if err := rows.Scan(
			&model.ID, &model.Title, &model.Genre, &model.Director, &model.Cast,
			&model.Description, &model.Country, &model.Year, &model.Rating,
		); err != nil {
			return nil, err
		}

		result = append(result, model)
	}

	return result, rows.Err()
}
