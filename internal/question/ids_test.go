package question

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		reason IDReason
	}{
		{in: "5", want: 5},
		{in: "0", want: 0},
		{in: "", reason: ReasonEmpty},
		{in: "13Z", reason: ReasonNotNumeric},
		{in: "-1", reason: ReasonNotNumeric},
		{in: "+1", reason: ReasonNotNumeric},
		{in: " 1", reason: ReasonNotNumeric},
		{in: "99999999999999999999", reason: ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.reason == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var idErr *IDError
			require.True(t, errors.As(err, &idErr))
			assert.Equal(t, tt.reason, idErr.Reason)
		})
	}
}

func TestDecodeID(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int64
		reason IDReason
	}{
		{name: "number", raw: `3`, want: 3},
		{name: "numeric string", raw: `"3"`, want: 3},
		{name: "padded string", raw: `" 7 "`, want: 7},
		{name: "negative", raw: `-2`, want: -2},
		{name: "absent", raw: ``, reason: ReasonEmpty},
		{name: "null", raw: `null`, reason: ReasonEmpty},
		{name: "word", raw: `"Not a Number"`, reason: ReasonNotNumeric},
		{name: "fraction", raw: `3.5`, reason: ReasonNotNumeric},
		{name: "integral float", raw: `3.0`, want: 3},
		{name: "exponent", raw: `1e2`, want: 100},
		{name: "negative integral float", raw: `-4.00`, want: -4},
		{name: "float string", raw: `"3.0"`, reason: ReasonNotNumeric},
		{name: "huge float", raw: `1e30`, reason: ReasonOutOfRange},
		{name: "huge", raw: `123456789012345678901234`, reason: ReasonOutOfRange},
		{name: "bool", raw: `true`, reason: ReasonWrongType},
		{name: "object", raw: `{"id":3}`, reason: ReasonWrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeID(json.RawMessage(tt.raw))
			if tt.reason == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var idErr *IDError
			require.True(t, errors.As(err, &idErr), "got %v", err)
			assert.Equal(t, tt.reason, idErr.Reason)
		})
	}
}
