package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler register custom error handler.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrBadParameter] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// echoStatusToCode picks an error code for echo errors that carry no RequestError.
func echoStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrEntityNotFound
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
		return ErrBadParameter
	default:
		return ErrInternalServerError
	}
}

// requestErrorField names the parameter or body that failed OpenAPI validation.
func requestErrorField(re *openapi3filter.RequestError) string {
	switch {
	case re.Parameter != nil:
		return re.Parameter.Name
	case re.RequestBody != nil:
		return "body"
	default:
		return ""
	}
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	regErr := ToRegistryError(err)
	if regErr == nil {
		regErr = &RegistryError{Code: ErrInternalServerError, Message: "an internal server error has occurred", Inner: err}
	}

	var statusCode int
	var he *echo.HTTPError
	if he, _ = err.(*echo.HTTPError); he != nil {
		m, _ := he.Message.(string)
		regErr = &RegistryError{Code: echoStatusToCode(he.Code), Message: m, Inner: err}
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				regErr.Code = ErrBadParameter
				regErr.Field = requestErrorField(requestError)
			}
		}
		statusCode = he.Code
	} else {
		statusCode = h.getStatusCode(regErr.Code)
	}

	if statusCode >= http.StatusInternalServerError {
		level.Error(h.logger).Log(
			"msg", "HTTP request error",
			"path", c.Path(),
			"err", err,
		)
	} else {
		level.Debug(h.logger).Log(
			"msg", "HTTP request rejected",
			"path", c.Path(),
			"code", regErr.Code,
			"err", err,
		)
	}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead && he != nil {
			_ = c.NoContent(he.Code)
		} else {
			_ = c.JSON(statusCode, ErrResponse{Error: regErr})
		}
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *RegistryError `json:"error,omitempty"`
}
