package errors

import "net/http"

// ErrorResp carries the HTTP status alongside the message so handlers can
// map domain failures onto responses without switching on error strings.
type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &ErrorResp{Code: http.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &ErrorResp{Code: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) error {
	return &ErrorResp{Code: http.StatusNotFound, Message: message}
}

func UnprocessableEntity(message string) error {
	return &ErrorResp{Code: http.StatusUnprocessableEntity, Message: message}
}

func Conflict(message string) error {
	return &ErrorResp{Code: http.StatusConflict, Message: message}
}

func InternalServerError(message string) error {
	return &ErrorResp{Code: http.StatusInternalServerError, Message: message}
}

// HttpCode extracts the status for an error, defaulting to 500 for
// errors that did not originate from this package.
func HttpCode(err error) int {
	if resp, ok := err.(*ErrorResp); ok {
		return resp.Code
	}
	return http.StatusInternalServerError
}
