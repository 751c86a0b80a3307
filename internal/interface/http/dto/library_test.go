package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RawValue
	}{
		{"字符串", `{"title":"Dune","author":"F","copies":"3"}`, "3"},
		{"数字", `{"title":"Dune","author":"F","copies":3}`, "3"},
		{"负数", `{"title":"Dune","author":"F","copies":-5}`, "-5"},
		{"非数字字符串", `{"title":"Dune","author":"F","copies":"abc"}`, "abc"},
		{"null", `{"title":"Dune","author":"F","copies":null}`, ""},
		{"缺省", `{"title":"Dune","author":"F"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RegisterBookRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Copies)
		})
	}
}

func TestRawValue_UnmarshalParam(t *testing.T) {
	var v RawValue
	require.NoError(t, v.UnmarshalParam(" 7 "))
	assert.Equal(t, " 7 ", v.String())
}
