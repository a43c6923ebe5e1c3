package httpadapter

type httpError struct {
	Message string `json:"message"`
}

func (e *httpError) Error() string { return e.Message }

func newError(message string) *httpError { return &httpError{Message: message} }

var (
	errBadRequest       = newError("body invalid")
	errNotFound         = newError("not found")
	errMethodNotAllowed = newError("method not allowed")
)
