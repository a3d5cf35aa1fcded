// Package file читает каталог из локального CSV-файла.
package file

import (
	"context"
	"os"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
)

type MovieRepo struct {
	path string
}

func NewMovieRepo(path string) *MovieRepo {
	return &MovieRepo{path: path}
}

func (r *MovieRepo) Name() string {
	return "file:" + r.path
}

// LoadMovies читает и разбирает файл целиком. Отсутствующий файл - *catalog.LoadError.
func (r *MovieRepo) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, &catalog.LoadError{Err: e.Wrap(err.Error(), e.ErrCatalogUnreadable)}
	}
	defer f.Close()

	return catalog.ParseCSV(f)
}
