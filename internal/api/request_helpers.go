package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
)

// getPathID extracts an integer ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID. IDs no task can have (0, negative) are still
//     returned; the lookup reports them as not found.
//   - (0, service.ErrTaskNotFound): The value is numeric but overflows int64
//   - (0, error): A validation error wrapping domain.ErrInvalidID otherwise
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, service.ErrTaskNotFound
		}
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}
