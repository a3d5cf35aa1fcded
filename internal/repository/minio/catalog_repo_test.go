package minio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "title,genre,director,cast,description,country,year,rating\n" +
	"Heist Masters,Crime,A. Smith,John Doe,One last job.,USA,2015,6.9\n"

// newFakeS3 отдаёт один объект movies/movies.csv, остальное - 404.
func newFakeS3(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movies/movies.csv" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Length", strconv.Itoa(len(sample)))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("ETag", `"0123456789abcdef"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *minio.Client {
	t.Helper()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	mc, err := minio.New(u.Host, &minio.Options{
		Creds:  credentials.NewStaticV4("test", "testsecret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	return mc
}

func TestCatalogRepo_LoadMovies(t *testing.T) {
	srv := newFakeS3(t)
	repo := NewCatalogRepo(newClient(t, srv), &cfg.MinIOCfg{BucketName: "movies", ObjectKey: "movies.csv"})

	movies, err := repo.LoadMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Heist Masters", movies[0].Title)
	assert.Equal(t, "minio:movies/movies.csv", repo.Name())
}

func TestCatalogRepo_MissingObject(t *testing.T) {
	srv := newFakeS3(t)
	repo := NewCatalogRepo(newClient(t, srv), &cfg.MinIOCfg{BucketName: "movies", ObjectKey: "absent.csv"})

	_, err := repo.LoadMovies(context.Background())
	assert.Error(t, err)
}
