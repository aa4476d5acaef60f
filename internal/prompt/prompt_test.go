package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name        string
		instruction string
		text        string
		want        string
	}{
		{"summarize", "Summarize:", "Hello\nWorld", "Summarize:\n\nHello\nWorld"},
		{"empty instruction", "", "body", "\n\nbody"},
		{"empty text", "Summarize:", "", "Summarize:\n\n"},
		{"both empty", "", "", "\n\n"},
		{"instruction keeps trailing newline", "Do it\n", "x", "Do it\n\n\nx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.instruction, tt.text))
		})
	}
}

func TestDefaultInstruction(t *testing.T) {
	assert.True(t, strings.HasPrefix(DefaultInstruction, "Design a model exam paper"))
	assert.Contains(t, DefaultInstruction, "Q4 (a) [7 marks] (b) [8 marks] (c) [5 marks]")
}
