package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntOrString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "number", input: `5`, expected: 5},
		{name: "string", input: `"4"`, expected: 4},
		{name: "padded string", input: `" 3 "`, expected: 3},
		{name: "not a number", input: `"five"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v IntOrString
			err := json.Unmarshal([]byte(tt.input), &v)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, v.Int())
		})
	}
}
