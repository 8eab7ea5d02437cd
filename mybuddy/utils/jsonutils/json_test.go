package jsonutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain object", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```\n", `{"a": 1}`},
		{"unterminated fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"fence only", "```", ""},
		{"bom prefix", "\uFEFF{\"a\": 1}", `{"a": 1}`},
		{"escaped quotes untouched", `{"msg": "say \"hi\""}`, `{"msg": "say \"hi\""}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.input))
		})
	}
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", ToJSON(map[string]int{"a": 1}))
	assert.Equal(t, "", ToJSON(make(chan int)))
}
