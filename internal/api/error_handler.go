package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ibretsam/eCommerce-API/internal/core/domain"
)

// errorBody is the wire shape of a single error.
type errorBody struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	ErrorCode  string `json:"errorCode,omitempty"`
}

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error errorBody `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps typed domain errors to their HTTP status codes.
//   - Logs every failure with the request id: Info for 400/404/409, Warn for
//     401, Error for everything else.
//   - Renders the consistent envelope {"error":{type,message,statusCode,errorCode?}}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := resolveError(err)
		logError(log, c, body, err)
		_ = c.JSON(body.StatusCode, errorResponse{Error: body})
	}
}

func resolveError(err error) errorBody {
	var de *domain.Error
	if errors.As(err, &de) {
		status := statusForKind(de.Kind)
		return errorBody{
			Type:       string(de.Kind),
			Message:    de.Message,
			StatusCode: status,
			ErrorCode:  de.Code,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return errorBody{
			Type:       typeForStatus(he.Code),
			Message:    fmt.Sprintf("%v", he.Message),
			StatusCode: he.Code,
		}
	}

	// Unexpected error: generic message, the real cause only goes to the log.
	return errorBody{
		Type:       string(domain.KindInternal),
		Message:    "internal server error",
		StatusCode: http.StatusInternalServerError,
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func typeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(domain.KindValidation)
	case http.StatusNotFound:
		return string(domain.KindNotFound)
	case http.StatusUnauthorized:
		return string(domain.KindUnauthorized)
	case http.StatusConflict:
		return string(domain.KindConflict)
	default:
		return string(domain.KindInternal)
	}
}

func logError(log zerolog.Logger, c echo.Context, body errorBody, err error) {
	evt := log.Info()
	switch {
	case body.StatusCode == http.StatusUnauthorized:
		evt = log.Warn()
	case body.StatusCode >= http.StatusInternalServerError:
		evt = log.Error().Err(err)
	}

	evt.
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Int("status", body.StatusCode).
		Str("type", body.Type).
		Msg(body.Message)
}
