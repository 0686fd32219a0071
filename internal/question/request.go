package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// RequestKind tells which operation a POST /questions body asks for.
type RequestKind int

const (
	KindCreate RequestKind = iota + 1
	KindSearch
)

// QuestionsRequest is the decoded POST /questions body: a search when the
// body carries a non-null searchTerm, a create otherwise.
type QuestionsRequest struct {
	Kind       RequestKind
	SearchTerm string
	Create     CreateRequest
}

// DecodeQuestionsRequest inspects body and decodes the matching variant.
// A body that is not a JSON object wraps ErrBadRequest; fields that cannot be
// coerced wrap ErrUnprocessable.
func DecodeQuestionsRequest(body []byte) (QuestionsRequest, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return QuestionsRequest{}, err
	}

	if raw, ok := fields["searchTerm"]; ok && !isNull(raw) {
		term, err := scalarText(raw)
		if err != nil {
			return QuestionsRequest{}, fmt.Errorf("%w: searchTerm: %w", ErrUnprocessable, err)
		}
		return QuestionsRequest{Kind: KindSearch, SearchTerm: term}, nil
	}

	create, err := decodeCreate(fields)
	if err != nil {
		return QuestionsRequest{}, err
	}
	return QuestionsRequest{Kind: KindCreate, Create: create}, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body is null", ErrBadRequest)
	}
	return fields, nil
}

func decodeCreate(fields map[string]json.RawMessage) (CreateRequest, error) {
	var req CreateRequest
	var err error

	if req.Question, err = decodeText(fields, "question"); err != nil {
		return CreateRequest{}, err
	}
	if req.Answer, err = decodeText(fields, "answer"); err != nil {
		return CreateRequest{}, err
	}
	if req.Category, err = DecodeID(fields["category"]); err != nil {
		return CreateRequest{}, fmt.Errorf("%w: category: %w", ErrUnprocessable, err)
	}

	req.Difficulty = DefaultDifficulty
	if raw, ok := fields["difficulty"]; ok && !isNull(raw) {
		d, err := DecodeID(raw)
		if err != nil {
			return CreateRequest{}, fmt.Errorf("%w: difficulty: %w", ErrUnprocessable, err)
		}
		if d < math.MinInt32 || d > math.MaxInt32 {
			return CreateRequest{}, fmt.Errorf("%w: difficulty: %w", ErrUnprocessable,
				&IDError{Input: string(raw), Reason: ReasonOutOfRange})
		}
		req.Difficulty = int32(d)
	}
	return req, nil
}

func decodeText(fields map[string]json.RawMessage, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", fmt.Errorf("%w: %s is required", ErrUnprocessable, key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnprocessable, key, err)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s is required", ErrUnprocessable, key)
	}
	return s, nil
}

// scalarText renders a JSON string, number or boolean as search text.
// Numbers keep their literal spelling. Arrays and objects are rejected.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case raw[0] == '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case bytes.Equal(raw, []byte("true")), bytes.Equal(raw, []byte("false")):
		return string(raw), nil
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	default:
		return "", fmt.Errorf("expected a string, number or boolean, got %s", raw)
	}
}
