package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := "\ufefftitle,genre,director,cast,description,country,year,rating,budget\n" +
		"The Great Heist,Crime/Drama,A. Smith,\"Jane Roe, John Doe\",A crew plans a vault job,USA,2012,7.5,100\n" +
		"Quiet Film,,,,,France,2010.0,6\n"

	movies, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, 0, movies[0].Index)
	assert.Equal(t, "The Great Heist", movies[0].Title)
	assert.Equal(t, "Jane Roe, John Doe", movies[0].Cast)
	assert.Equal(t, 2012, movies[0].Year)
	assert.InDelta(t, 7.5, movies[0].Rating, 1e-9)

	assert.Equal(t, 1, movies[1].Index)
	assert.Empty(t, movies[1].Genre)
	assert.Empty(t, movies[1].Description)
	assert.Equal(t, 2010, movies[1].Year)
}

func TestParseCSV_ColumnsInAnyOrder(t *testing.T) {
	input := "rating,year,country,description,cast,director,genre,title\n" +
		"8.1,1999,USA,desc,cast,dir,Sci-Fi,Matrix\n"

	movies, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Matrix", movies[0].Title)
	assert.Equal(t, 1999, movies[0].Year)
}

func TestParseCSV_Errors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    error
		columns []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  e.ErrCatalogUnreadable,
		},
		{
			name:    "missing columns",
			input:   "title,genre,director,year\nA,B,C,2000\n",
			want:    e.ErrMissingColumns,
			columns: []string{"cast", "description", "country", "rating"},
		},
		{
			name:    "bad year",
			input:   "title,genre,director,cast,description,country,year,rating\nA,,,,,,soon,5\n",
			want:    e.ErrInvalidNumeric,
			columns: []string{"year"},
		},
		{
			name:    "empty rating",
			input:   "title,genre,director,cast,description,country,year,rating\nA,,,,,,2000,\n",
			want:    e.ErrInvalidNumeric,
			columns: []string{"rating"},
		},
		{
			name:  "broken quoting",
			input: "title,genre,director,cast,description,country,year,rating\n\"A,,,,,,2000,5\n",
			want:  e.ErrCatalogUnreadable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			if tc.columns != nil {
				assert.Equal(t, tc.columns, loadErr.Columns)
			}
		})
	}
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Line: 3, Columns: []string{"year"}, Err: e.ErrInvalidNumeric}
	assert.Equal(t, "catalog load (line 3) [year]: catalog numeric column is not a number", err.Error())
}
