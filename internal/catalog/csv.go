package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/DRSN-tech/movie-recommender/internal/domain"
	"github.com/DRSN-tech/movie-recommender/pkg/e"
)

// Обязательные колонки каталога
const (
	ColumnTitle       = "title"
	ColumnGenre       = "genre"
	ColumnDirector    = "director"
	ColumnCast        = "cast"
	ColumnDescription = "description"
	ColumnCountry     = "country"
	ColumnYear        = "year"
	ColumnRating      = "rating"
)

// RequiredColumns - колонки, без которых каталог не загружается.
var RequiredColumns = []string{
	ColumnTitle, ColumnGenre, ColumnDirector, ColumnCast,
	ColumnDescription, ColumnCountry, ColumnYear, ColumnRating,
}

const utf8BOM = "\ufeff"

// ParseCSV читает каталог из CSV с заголовком. Порядок колонок произвольный, лишние колонки игнорируются.
// Пустые текстовые поля становятся пустыми строками, year и rating обязаны быть числами.
func ParseCSV(r io.Reader) ([]domain.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: empty input", e.ErrCatalogUnreadable)
		} else {
			err = fmt.Errorf("%w: %v", e.ErrCatalogUnreadable, err)
		}
		return nil, &LoadError{Line: 1, Err: err}
	}

	positions, err := columnPositions(header)
	if err != nil {
		return nil, err
	}

	var movies []domain.Movie
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: %v", e.ErrCatalogUnreadable, err)}
		}
		line, _ := reader.FieldPos(0)

		movie, err := parseRecord(record, positions, line)
		if err != nil {
			return nil, err
		}
		movie.Index = len(movies)
		movies = append(movies, movie)
	}

	return movies, nil
}

func columnPositions(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	var missing []string
	for _, column := range RequiredColumns {
		if _, ok := positions[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &LoadError{Line: 1, Columns: missing, Err: e.ErrMissingColumns}
	}

	return positions, nil
}

func parseRecord(record []string, positions map[string]int, line int) (domain.Movie, error) {
	field := func(column string) string {
		pos := positions[column]
		if pos >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[pos])
	}

	year, err := parseYear(field(ColumnYear))
	if err != nil {
		return domain.Movie{}, &LoadError{Line: line, Columns: []string{ColumnYear}, Err: e.ErrInvalidNumeric}
	}

	rating, err := strconv.ParseFloat(field(ColumnRating), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return domain.Movie{}, &LoadError{Line: line, Columns: []string{ColumnRating}, Err: e.ErrInvalidNumeric}
	}

	return domain.Movie{
		Title:       field(ColumnTitle),
		Genre:       field(ColumnGenre),
		Director:    field(ColumnDirector),
		Cast:        field(ColumnCast),
		Description: field(ColumnDescription),
		Country:     field(ColumnCountry),
		Year:        year,
		Rating:      rating,
	}, nil
}

// parseYear принимает целые числа и целые значения с плавающей точкой ("2010.0").
func parseYear(s string) (int, error) {
	if year, err := strconv.Atoi(s); err == nil {
		return year, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("year %q is not an integer", s)
	}

	return int(f), nil
}
