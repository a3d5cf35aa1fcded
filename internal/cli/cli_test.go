package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `title,genre,director,cast,description,country,year,rating
The Great Heist,Crime/Drama,A. Smith,John Doe,A crew plans a vault robbery.,USA,2012,7.8
Heist Masters,Crime,A. Smith,John Doe,Thieves reunite for one last vault job.,USA,2015,6.9
Romance Blooms,Romance,B. Jones,Mary Major,Two florists fall in love in Paris.,France,2009,7.2
`

func writeCatalog(t *testing.T) string {
	t.Helper()

	t.Setenv("CATALOG_SOURCE", "file")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "")

	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := New().WithOutput(&stdout, &stderr).ExecuteWithArgs(context.Background(), args)

	return stdout.String(), stderr.String(), err
}

func TestRecommendCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := run(t, "recommend", "Heist Masters", "-n", "1", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Movies similar to "Heist Masters"`)
	assert.Contains(t, out, "The Great Heist")
	assert.NotContains(t, out, "Romance Blooms")
}

func TestRecommendCommand_NotFound(t *testing.T) {
	path := writeCatalog(t)

	_, _, err := run(t, "recommend", "Unknown Film", "--catalog", path)
	require.ErrorIs(t, err, e.ErrMovieNotFound)

	_, _, err = run(t, "recommend", "heist", "-n", "20", "--catalog", path)
	require.ErrorIs(t, err, e.ErrInvalidLimit)
}

func TestCompareCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := run(t, "compare", "Romance Blooms", "The Great Heist", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rating difference: 0.60")
	assert.Contains(t, out, "Year difference: 3")
}

func TestStatsCommand(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := run(t, "stats", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Movies: 3")
	assert.Contains(t, out, "Years: 2009-2015")
	assert.Contains(t, out, "Top genres:")
	assert.Contains(t, out, "A. Smith")
}

func TestArgsValidation(t *testing.T) {
	_, _, err := run(t, "compare", "only-one")
	require.Error(t, err)

	_, _, err = run(t, "recommend")
	require.Error(t, err)
}

func TestMissingCatalog(t *testing.T) {
	writeCatalog(t)

	_, _, err := run(t, "stats", "--catalog", filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, e.ErrCatalogUnreadable)
}
