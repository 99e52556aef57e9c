package node

import "unicode/utf8"

func TruncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// TruncateWithNote 超限截断并附加说明，提示内容不完整
func TruncateWithNote(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return TruncateByRunes(s, maxRunes) + "\n\n[Content truncated]"
}
