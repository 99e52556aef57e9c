package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"plain string", "hello", "hello"},
		{"integer float", float64(42), "42"},
		{"fractional float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"string list joined by newline", []any{"a", "b"}, "a\nb"},
		{"nested list", []any{"a", []any{"b", "c"}}, "a\nb\nc"},
		{
			name:  "map rendered as sorted key lines",
			input: map[string]any{"zeta": "sist", "alpha": "först"},
			want:  "alpha: först\nzeta: sist",
		},
		{
			name:  "list of maps",
			input: []any{map[string]any{"point": "one"}},
			want:  "point: one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceText(tt.input))
		})
	}
}

func TestStringField(t *testing.T) {
	m := map[string]any{"title": "Kursen", "empty": "", "num": float64(7)}

	assert.Equal(t, "Kursen", stringField(m, "title", "fallback"))
	assert.Equal(t, "fallback", stringField(m, "empty", "fallback"))
	assert.Equal(t, "fallback", stringField(m, "missing", "fallback"))
	assert.Equal(t, "7", stringField(m, "num", "fallback"))
}

func TestIntField(t *testing.T) {
	m := map[string]any{
		"count":   float64(3),
		"str":     "12",
		"padded":  " 8 ",
		"garbage": "tolv",
		"null":    nil,
	}

	assert.Equal(t, 3, intField(m, "count", 0))
	assert.Equal(t, 12, intField(m, "str", 0))
	assert.Equal(t, 8, intField(m, "padded", 0))
	assert.Equal(t, 99, intField(m, "garbage", 99))
	assert.Equal(t, 99, intField(m, "null", 99))
	assert.Equal(t, 99, intField(m, "missing", 99))
}

func TestListField(t *testing.T) {
	m := map[string]any{
		"items":  []any{"a"},
		"single": "bara en",
		"null":   nil,
	}

	assert.Equal(t, []any{"a"}, listField(m, "items"))
	// 单值按单元素列表处理
	assert.Equal(t, []any{"bara en"}, listField(m, "single"))
	assert.NotNil(t, listField(m, "missing"))
	assert.Empty(t, listField(m, "missing"))
	assert.Empty(t, listField(m, "null"))
}

func TestStringListField(t *testing.T) {
	m := map[string]any{"topics": []any{"variabler", float64(2), true}}
	assert.Equal(t, []string{"variabler", "2", "true"}, stringListField(m, "topics"))
}

func TestMapItem(t *testing.T) {
	assert.Equal(t, map[string]any{"k": "v"}, mapItem(map[string]any{"k": "v"}))
	assert.Empty(t, mapItem("not a map"))
	assert.NotNil(t, mapItem(nil))
}
