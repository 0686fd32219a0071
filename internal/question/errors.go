package question

import "errors"

var (
	// ErrPageNotFound reports an empty pagination window.
	ErrPageNotFound = errors.New("page not found")
	// ErrQuestionNotFound reports a delete of an id that does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrBadRequest reports a body that is not a JSON object.
	ErrBadRequest = errors.New("malformed request body")
	// ErrUnprocessable reports fields that decode but cannot be applied.
	ErrUnprocessable = errors.New("unprocessable question fields")
)
