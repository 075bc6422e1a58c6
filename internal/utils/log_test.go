package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "non-positive limit", input: "Hi Sara,", limit: 0, want: ""},
		{name: "fits", input: "Hi Sara,", limit: 20, want: "Hi Sara,"},
		{name: "cut", input: "Exciting React Developer opportunity!", limit: 8, want: "Exciting..."},
		{name: "trimmed first", input: "\n  Best regards  \n", limit: 4, want: "Best..."},
		{name: "counts runes", input: "Fès – Rabat", limit: 3, want: "Fès..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TruncateForLog(tt.input, tt.limit))
		})
	}
}
