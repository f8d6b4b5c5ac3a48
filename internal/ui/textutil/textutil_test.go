package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Harbour House", 20, "Harbour House"},
		{"Harbour House", 8, "Harbour…"},
		{"Harbour House", 1, "…"},
		{"Harbour House", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.max)
		assert.Equal(t, tt.want, got, "Truncate(%q, %d)", tt.in, tt.max)
		assert.LessOrEqual(t, Width(got), max(tt.max, 0))
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc   ", Fit("abc", 6))
	assert.Equal(t, "abcd…", Fit("abcdefgh", 5))
	assert.Equal(t, 6, Width(Fit("日本", 6)))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "..ab...", Center("ab", 7, "."))
	assert.Equal(t, ".......", Center("", 7, "."))
	assert.Equal(t, "abcd…", Center("abcdefgh", 5, "."))
}
