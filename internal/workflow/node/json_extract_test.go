package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantOK  bool
		wantKey string
		wantVal any
	}{
		{
			name:    "bare JSON object",
			raw:     `{"title": "Go 入门"}`,
			wantOK:  true,
			wantKey: "title",
			wantVal: "Go 入门",
		},
		{
			name:    "fenced json block",
			raw:     "Here is the result:\n```json\n{\"count\": 3}\n```\nHope this helps!",
			wantOK:  true,
			wantKey: "count",
			wantVal: float64(3),
		},
		{
			name:    "fenced block without language tag",
			raw:     "```\n{\"ok\": true}\n```",
			wantOK:  true,
			wantKey: "ok",
			wantVal: true,
		},
		{
			name:    "prose around object triggers brace scan",
			raw:     `The answer is {"answer": "42"} as requested.`,
			wantOK:  true,
			wantKey: "answer",
			wantVal: "42",
		},
		{
			name:    "leading and trailing whitespace",
			raw:     "\n\n  {\"a\": 1}  \n",
			wantOK:  true,
			wantKey: "a",
			wantVal: float64(1),
		},
		{
			name:   "no JSON at all",
			raw:    "Sorry, I cannot help with that.",
			wantOK: false,
		},
		{
			name:   "unbalanced braces",
			raw:    `{"broken": `,
			wantOK: false,
		},
		{
			name:   "empty input",
			raw:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.raw)
			if !tt.wantOK {
				assert.False(t, got.OK())
				assert.NotEmpty(t, got.Reason)
				return
			}
			require.True(t, got.OK(), "reason: %s", got.Reason)
			assert.Equal(t, tt.wantVal, got.Payload[tt.wantKey])
			assert.NotEmpty(t, got.RawJSON)
		})
	}
}

func TestExtractJSONPrefersFencedBlock(t *testing.T) {
	// 正文里的花括号不能抢在围栏块前面被扫描到
	raw := "Use {placeholders} carefully.\n```json\n{\"field\": \"value\"}\n```"
	got := ExtractJSON(raw)
	require.True(t, got.OK())
	assert.Equal(t, "value", got.Payload["field"])
}

func TestExtractJSONNestedObject(t *testing.T) {
	raw := `{"outer": {"inner": [1, 2]}}`
	got := ExtractJSON(raw)
	require.True(t, got.OK())
	inner, ok := got.Payload["outer"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, inner["inner"], 2)
}
