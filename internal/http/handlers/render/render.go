package render

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lidofinance/betfair-aping/internal/pkg/aping"
)

// JSON flattens v and writes it with the API encoder.
func JSON(w http.ResponseWriter, log *slog.Logger, v any) {
	flat, err := aping.ModelToDict(v)
	if err != nil {
		Error(w, log, fmt.Errorf("could not flatten response: %w", err))
		return
	}

	payload, err := aping.Marshal(flat)
	if err != nil {
		Error(w, log, fmt.Errorf("could not marshal response: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func Error(w http.ResponseWriter, log *slog.Logger, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error(err.Error())
	} else {
		log.Warn(err.Error())
	}

	http.Error(w, err.Error(), status)
}

func StatusOf(err error) int {
	var apiErr *aping.ApiError

	switch {
	case errors.Is(err, aping.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, aping.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.As(err, &apiErr), errors.Is(err, aping.ErrUnexpectedShape):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
