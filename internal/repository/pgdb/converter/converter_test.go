package converter

import (
	"testing"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rating(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestToArrDomain(t *testing.T) {
	movies, err := ToArrDomain([]MovieModel{
		{ID: 10, Title: "Heist Masters", Genre: "Crime", Year: pgtype.Int4{Int32: 2015, Valid: true}, Rating: rating("6.9")},
		{ID: 11, Title: "Romance Blooms", Country: "France", Year: pgtype.Int4{Int32: 2009, Valid: true}, Rating: rating("0")},
	})
	require.NoError(t, err)

	assert.Len(t, movies, 2)
	assert.Equal(t, "Heist Masters", movies[0].Title)
	assert.Equal(t, 6.9, movies[0].Rating)
	assert.Equal(t, 2015, movies[0].Year)
	assert.Equal(t, "France", movies[1].Country)
	assert.Zero(t, movies[1].Rating)
}

func TestToArrDomain_NullNumeric(t *testing.T) {
	tests := []struct {
		name    string
		model   MovieModel
		columns []string
	}{
		{
			name:    "null rating",
			model:   MovieModel{ID: 7, Title: "X", Year: pgtype.Int4{Int32: 2001, Valid: true}},
			columns: []string{"rating"},
		},
		{
			name:    "null year",
			model:   MovieModel{ID: 8, Title: "Y", Rating: rating("5.5")},
			columns: []string{"year"},
		},
		{
			name:    "both null",
			model:   MovieModel{ID: 9, Title: "Z"},
			columns: []string{"year", "rating"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToArrDomain([]MovieModel{tt.model})
			require.ErrorIs(t, err, e.ErrInvalidNumeric)

			var loadErr *catalog.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.columns, loadErr.Columns)
		})
	}
}
