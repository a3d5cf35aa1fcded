package minio

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/movie-recommender/internal/catalog"
	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// CatalogRepo читает CSV-каталог из объекта MinIO.
type CatalogRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewCatalogRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *CatalogRepo {
	return &CatalogRepo{
		mc:  mc,
		cfg: cfg,
	}
}

func (c *CatalogRepo) Name() string {
	return fmt.Sprintf("minio:%s/%s", c.cfg.BucketName, c.cfg.ObjectKey)
}

// LoadMovies скачивает объект и разбирает его. Сетевые ошибки возвращаются как есть
// и могут повторяться, ошибки содержимого - *catalog.LoadError.
func (c *CatalogRepo) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	obj, err := c.mc.GetObject(ctx, c.cfg.BucketName, c.cfg.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer obj.Close()

	// GetObject ленивый: Stat проверяет доступность объекта до разбора
	if _, err := obj.Stat(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return catalog.ParseCSV(obj)
}
