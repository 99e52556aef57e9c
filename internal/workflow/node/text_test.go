package node

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateByRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello"},
		{"zero limit", "hello", 0, ""},
		{"negative limit", "hello", -1, ""},
		{"multibyte runes cut at rune boundary", "日本語テキスト", 3, "日本語"},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateByRunes(tt.input, tt.maxRunes))
		})
	}
}

func TestTruncateWithNote(t *testing.T) {
	short := "kort text"
	assert.Equal(t, short, TruncateWithNote(short, 100))

	long := strings.Repeat("a", 50)
	got := TruncateWithNote(long, 10)
	assert.True(t, strings.HasPrefix(got, strings.Repeat("a", 10)))
	assert.True(t, strings.HasSuffix(got, "[Content truncated]"))
}
