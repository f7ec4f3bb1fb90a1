// File: internal/domain/chat_test.go
package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"short prompt kept verbatim", "Hi", "Hi"},
		{"exactly fifty chars kept verbatim", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"fifty one chars truncated", strings.Repeat("a", 51), strings.Repeat("a", 50) + "..."},
		{"long prompt truncated", strings.Repeat("Hi", 60), strings.Repeat("Hi", 25) + "..."},
		{"empty prompt", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTitle(tt.prompt))
		})
	}
}

func TestDeriveLastMessage(t *testing.T) {
	long := strings.Repeat("b", 101)
	assert.Equal(t, strings.Repeat("b", 100)+"...", DeriveLastMessage(long))
	assert.Equal(t, strings.Repeat("b", 100), DeriveLastMessage(strings.Repeat("b", 100)))
	assert.Equal(t, "fine", DeriveLastMessage("fine"))
}

func TestTruncateDoesNotSplitMultiByteRunes(t *testing.T) {
	prompt := strings.Repeat("é", 60)
	got := DeriveTitle(prompt)
	assert.Equal(t, strings.Repeat("é", 50)+"...", got)
}
