package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"bitbucket.org/rutaandina/backend/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type ResponseWriter struct {
	Writer   http.ResponseWriter
	Language string
	scope    string
}

func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		Writer: w,
	}
}

type generalResponse struct {
	Errors  []*errorResponse `json:"errors"`
	Success bool             `json:"success"`
	Data    interface{}      `json:"data"`
}

type errorResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Scope   string      `json:"scope"`
	Type    int         `json:"type"`
	Data    interface{} `json:"data"`
}

type ErrOption func(*errorResponse)

func WithErrorType(errType int) ErrOption {
	return func(err *errorResponse) {
		err.Type = errType
	}
}

func WithErrorScope(scope string) ErrOption {
	return func(err *errorResponse) {
		err.Scope = scope
	}
}

func (r *ResponseWriter) writeJSONResponse(code int, errors []*errorResponse, data interface{}) {
	r.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	response := &generalResponse{Errors: errors, Success: errors == nil, Data: data}
	b, err := json.Marshal(response)
	if err != nil {
		r.Writer.WriteHeader(http.StatusInternalServerError)
		r.Writer.Write([]byte(fmt.Sprintf("unexpected error: %v", err)))
		return
	}
	r.Writer.WriteHeader(code)
	r.Writer.Write(b)
}

func (r *ResponseWriter) writePlainJSONResponse(statusCode int, data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		r.Writer.WriteHeader(http.StatusInternalServerError)
		r.Writer.Write([]byte(fmt.Sprintf("unexpected error: %v", err)))
		return
	}

	r.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	r.Writer.WriteHeader(statusCode)
	r.Writer.Write(b)
}

// WriteJSON responds with data as-is on success and with the single
// normalized error shape {"error": message} on failure, logging either
// way through the request-scoped logger.
func (r *ResponseWriter) WriteJSON(statusCode int, data interface{}, err error, message string) {
	logger := config.GetLogger()
	fields := make(log.Fields)
	fields["status_code"] = statusCode
	if r.scope != "" {
		fields["scope"] = r.scope
	}
	if statusCode >= 200 && statusCode <= 299 {
		logger.WithFields(fields).Info("success")
	}
	if statusCode >= 300 {
		if data == nil {
			data = map[string]interface{}{
				"error": message,
			}
		}
		if err == nil {
			err = errors.Errorf(message)
		}
		fields["errors"] = data
		logger.WithFields(fields).Error(err)
	}
	r.writePlainJSONResponse(statusCode, data)
}

// Write resolves a localized response message before delegating to
// WriteJSON.
func (r *ResponseWriter) Write(statusCode int, data interface{}, err error, message *NewRM) {
	language := r.Language
	if language == "" {
		language = Language.English
	}
	msg := ""
	if message != nil {
		msg = (*message)[language]
	}
	r.WriteJSON(statusCode, data, err, msg)
}

// GetRequestLanguage picks the response language from Accept-Language;
// Spanish is the only translation carried, everything else gets
// English.
func (r *ResponseWriter) GetRequestLanguage(req *http.Request) {
	accept := req.Header.Get("Accept-Language")
	if strings.HasPrefix(strings.ToLower(accept), Language.Spanish) {
		r.Language = Language.Spanish
		return
	}
	r.Language = Language.English
}

func (r *ResponseWriter) StartLogger(scope string) {
	r.scope = scope
	config.GetLogger().WithField("scope", scope).Info("start")
}

func (r *ResponseWriter) LogInfo(data interface{}, message string) {
	config.GetLogger().WithFields(log.Fields{"scope": r.scope, "data": data}).Info(message)
}

func (r *ResponseWriter) LogError(err error, message string) {
	if err == nil {
		err = errors.Errorf(message)
	}
	config.GetLogger().WithFields(log.Fields{"scope": r.scope, "message": message}).Error(err)
}

func (r *ResponseWriter) JSON(code int, data interface{}) {
	r.writeJSONResponse(code, nil, data)
}

func (r *ResponseWriter) String(code int, msg string) {
	r.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	r.Writer.WriteHeader(code)
	r.Writer.Write([]byte(msg))
}

func (r *ResponseWriter) Error(code int, msg string, opts ...ErrOption) {
	err := &errorResponse{Code: code, Message: msg}
	for _, With := range opts {
		With(err)
	}
	r.writeJSONResponse(code, []*errorResponse{err}, nil)
}
