package constant

import "net/http"

const MissingKeyPrefix = "Missing key: "

type CustomError struct {
	StatusCode int
	Message    string
}

func NewCError(StatusCode int, Message string) CustomError {
	return CustomError{StatusCode: StatusCode, Message: Message}
}

func (err CustomError) Error() string {
	return err.Message
}

var (
	ErrMalformedBody = NewCError(http.StatusBadRequest,
		"Request body must be a JSON object.")
	ErrNonNumericPrice = NewCError(http.StatusBadRequest,
		"Open, high, and low prices must be numeric.")
)
