package e

import "fmt"

var (
	// Ошибки загрузки каталога
	ErrCatalogUnreadable = fmt.Errorf("catalog source is unreadable")
	ErrMissingColumns    = fmt.Errorf("catalog is missing required columns")
	ErrInvalidNumeric    = fmt.Errorf("catalog numeric column is not a number")
	ErrUnknownSource     = fmt.Errorf("unknown catalog source")

	// Внутренние ошибки
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrEngineNotReady       = fmt.Errorf("recommendation engine is not ready")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrTitleRequired    = fmt.Errorf("title is required")
	ErrInvalidLimit     = fmt.Errorf("number of recommendations must be between 1 and 10")
	ErrInvalidRange     = fmt.Errorf("range lower bound must not exceed upper bound")
	ErrInvalidBins      = fmt.Errorf("number of histogram bins must be between 1 and 100")

	// 404 Not Found
	ErrMovieNotFound = fmt.Errorf("movie not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
