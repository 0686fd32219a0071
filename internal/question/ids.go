package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IDReason classifies why an id failed to parse.
type IDReason int

const (
	ReasonEmpty IDReason = iota + 1
	ReasonNotNumeric
	ReasonOutOfRange
	ReasonWrongType
)

func (r IDReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonNotNumeric:
		return "not numeric"
	case ReasonOutOfRange:
		return "out of range"
	case ReasonWrongType:
		return "wrong type"
	default:
		return "unknown"
	}
}

// IDError is returned by ParseID and DecodeID.
type IDError struct {
	Input  string
	Reason IDReason
}

func (e *IDError) Error() string {
	return fmt.Sprintf("invalid id %q: %s", e.Input, e.Reason)
}

// ParseID parses a path segment as an unsigned decimal id. Signs, spaces and
// any non-digit are rejected.
func ParseID(raw string) (int64, error) {
	if raw == "" {
		return 0, &IDError{Input: raw, Reason: ReasonEmpty}
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, &IDError{Input: raw, Reason: ReasonNotNumeric}
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &IDError{Input: raw, Reason: ReasonOutOfRange}
	}
	return id, nil
}

// DecodeID coerces a JSON body value into an id. Integers and strings holding
// an integer are accepted; null or absent input yields ReasonEmpty.
func DecodeID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return 0, &IDError{Input: string(raw), Reason: ReasonEmpty}
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, &IDError{Input: string(raw), Reason: ReasonWrongType}
		}
		text = strings.TrimSpace(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if bytes.ContainsAny(raw, ".eE") {
			return integralNumber(raw)
		}
		text = string(raw)
	default:
		return 0, &IDError{Input: string(raw), Reason: ReasonWrongType}
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &IDError{Input: string(raw), Reason: ReasonOutOfRange}
		}
		return 0, &IDError{Input: string(raw), Reason: ReasonNotNumeric}
	}
	return id, nil
}

// integralNumber accepts JSON numbers such as 3.0 or 1e2 that hold a whole value.
func integralNumber(raw json.RawMessage) (int64, error) {
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &IDError{Input: string(raw), Reason: ReasonOutOfRange}
		}
		return 0, &IDError{Input: string(raw), Reason: ReasonNotNumeric}
	}
	if f != math.Trunc(f) {
		return 0, &IDError{Input: string(raw), Reason: ReasonNotNumeric}
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &IDError{Input: string(raw), Reason: ReasonOutOfRange}
	}
	return int64(f), nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
