package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `title,genre,director,cast,description,country,year,rating
The Great Heist,Crime/Drama,A. Smith,John Doe,A vault robbery.,USA,2012,7.8
Romance Blooms,Romance,B. Jones,Mary Major,Florists in Paris.,France,2009,7.2
`

func TestMovieRepo_LoadMovies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	repo := NewMovieRepo(path)
	movies, err := repo.LoadMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Romance Blooms", movies[1].Title)
	assert.Equal(t, 2009, movies[1].Year)
	assert.Equal(t, "file:"+path, repo.Name())
}

func TestMovieRepo_MissingFile(t *testing.T) {
	repo := NewMovieRepo(filepath.Join(t.TempDir(), "absent.csv"))

	_, err := repo.LoadMovies(context.Background())
	require.ErrorIs(t, err, e.ErrCatalogUnreadable)

	var loadErr *catalog.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestMovieRepo_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMovieRepo("unused.csv").LoadMovies(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
