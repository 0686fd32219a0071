package quiz

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/question"
)

var (
	// ErrBadRequest reports a body that is not a JSON object.
	ErrBadRequest = errors.New("malformed quiz request")
	// ErrInvalidCategory reports a quiz_category that is not an id.
	ErrInvalidCategory = errors.New("quiz_category is not a category id")
	// ErrInvalidPrevious reports previous_questions that are not a list of ids.
	ErrInvalidPrevious = errors.New("previous_questions is not a list of ids")
	// ErrPoolExhausted reports that no unseen question is left.
	ErrPoolExhausted = errors.New("no questions left in quiz pool")
)

// Request selects the next quiz question. A nil Category means any category.
type Request struct {
	PreviousQuestions []int64
	Category          *int64
}

type rawRequest struct {
	PreviousQuestions json.RawMessage `json:"previous_questions"`
	QuizCategory      json.RawMessage `json:"quiz_category"`
}

// DecodeRequest parses a POST /quizzes body. An absent or null quiz_category
// decodes to nil; anything else must coerce to an id.
func DecodeRequest(body []byte) (Request, error) {
	var raw *rawRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if raw == nil {
		return Request{}, fmt.Errorf("%w: body is null", ErrBadRequest)
	}

	req := Request{PreviousQuestions: []int64{}}

	if len(raw.PreviousQuestions) > 0 && string(raw.PreviousQuestions) != "null" {
		var items []json.RawMessage
		if err := json.Unmarshal(raw.PreviousQuestions, &items); err != nil {
			return Request{}, fmt.Errorf("%w: %w", ErrInvalidPrevious, err)
		}
		for _, item := range items {
			id, err := question.DecodeID(item)
			if err != nil {
				return Request{}, fmt.Errorf("%w: %w", ErrInvalidPrevious, err)
			}
			req.PreviousQuestions = append(req.PreviousQuestions, id)
		}
	}

	if len(raw.QuizCategory) > 0 && string(raw.QuizCategory) != "null" {
		id, err := question.DecodeID(raw.QuizCategory)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %w", ErrInvalidCategory, err)
		}
		req.Category = &id
	}
	return req, nil
}
