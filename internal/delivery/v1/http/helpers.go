package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, describeValidation(validationErrs)
	case errors.Is(err, e.ErrTitleRequired):
		return http.StatusBadRequest, e.ErrTitleRequired.Error()
	case errors.Is(err, e.ErrInvalidLimit):
		return http.StatusBadRequest, e.ErrInvalidLimit.Error()
	case errors.Is(err, e.ErrInvalidRange):
		return http.StatusBadRequest, e.ErrInvalidRange.Error()
	case errors.Is(err, e.ErrInvalidBins):
		return http.StatusBadRequest, e.ErrInvalidBins.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrMovieNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, e.ErrEngineNotReady):
		return http.StatusServiceUnavailable, e.ErrEngineNotReady.Error()
	case errors.Is(err, e.ErrMissingColumns), errors.Is(err, e.ErrInvalidNumeric), errors.Is(err, e.ErrCatalogUnreadable):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func describeValidation(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return e.ErrStatusBadRequest.Error() + ": " + strings.Join(parts, "; ")
}

// queryInt читает целый параметр запроса. Для пустого необязательного параметра возвращается def.
func queryInt(r *http.Request, key string, def int, required bool) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if required {
			return 0, e.Wrap(key+" is required", e.ErrStatusBadRequest)
		}
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(key+" must be an integer", e.ErrStatusBadRequest)
	}

	return v, nil
}

// queryFloat читает дробный параметр запроса.
func queryFloat(r *http.Request, key string, def float64, required bool) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if required {
			return 0, e.Wrap(key+" is required", e.ErrStatusBadRequest)
		}
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, e.Wrap(key+" must be a number", e.ErrStatusBadRequest)
	}

	return v, nil
}
