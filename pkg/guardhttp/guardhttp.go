package guardhttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/guard/pkg/guard"
	"github.com/dmitrymomot/guard/pkg/logger"
)

// HandlerFunc is an HTTP handler that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorResponse is the JSON body written for a failed request.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Detail     *ErrorDetail
	LogLevel   slog.Level
}

type options struct {
	log            *slog.Logger
	fallbackStatus int
}

// Option configures Handler and WriteError.
type Option func(*options)

// WithLogger sets the logger used to record failed requests. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithFallbackStatus sets the status used for errors that are not argument errors.
func WithFallbackStatus(code int) Option {
	return func(o *options) {
		if isErrorStatus(code) {
			o.fallbackStatus = code
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log:            slog.Default(),
		fallbackStatus: http.StatusInternalServerError,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Handler adapts fn to http.Handler. A non-nil error returned by fn is
// written with WriteError, so fn must not have written a response yet.
func Handler(fn HandlerFunc, opts ...Option) http.Handler {
	o := newOptions(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err, o)
		}
	})
}

// WriteError logs err and writes the matching JSON error response.
func WriteError(w http.ResponseWriter, r *http.Request, err error, opts ...Option) {
	writeError(w, r, err, newOptions(opts))
}

func isErrorStatus(code int) bool {
	return code >= http.StatusBadRequest
}

// Classify maps err to a status code, response detail and log level.
// fallbackStatus is used when err is not an argument error; values below 400
// fall back to 500.
func Classify(err error, fallbackStatus int) ErrorInfo {
	if !isErrorStatus(fallbackStatus) {
		fallbackStatus = http.StatusInternalServerError
	}
	if argErr, ok := guard.AsArgumentError(err); ok {
		return ErrorInfo{
			StatusCode: http.StatusBadRequest,
			Detail: &ErrorDetail{
				Code:    argErr.Kind.Key(),
				Message: argErr.Error(),
				Details: map[string][]string{argErr.Label: {argErr.Message}},
			},
			LogLevel: slog.LevelWarn,
		}
	}

	return ErrorInfo{
		StatusCode: fallbackStatus,
		Detail: &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(fallbackStatus),
		},
		LogLevel: slog.LevelError,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, o options) {
	info := Classify(err, o.fallbackStatus)

	o.log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("guardhttp"),
	)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: info.Detail}); encErr != nil {
		o.log.ErrorContext(r.Context(), "failed to encode error response",
			logger.Error(encErr),
			logger.Component("guardhttp"),
		)
	}
}
