package generation

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// 模型回复按宽松 JSON 处理：字段可能缺失或类型不符。
// 这里集中实现全部字段级纠偏，避免各特性各写一套类型检查。

func formatScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// coerceText 将任意 JSON 值纠偏为文本：
// 列表按行连接，映射渲染为 "key: value" 行（键按字典序保证确定性）。
func coerceText(v any) string {
	switch t := v.(type) {
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, coerceText(item))
		}
		return strings.Join(parts, "\n")
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, k+": "+coerceText(t[k]))
		}
		return strings.Join(lines, "\n")
	default:
		return formatScalar(v)
	}
}

func textField(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return coerceText(v)
}

func stringField(m map[string]any, key string, def string) string {
	s := textField(m, key)
	if s == "" {
		return def
	}
	return s
}

func optionalStringField(m map[string]any, key string) string {
	return textField(m, key)
}

func intField(m map[string]any, key string, def int) int {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

// listField 缺失的列表字段返回空切片，绝不返回 nil
func listField(m map[string]any, key string) []any {
	v, ok := m[key]
	if !ok || v == nil {
		return []any{}
	}
	if l, ok := v.([]any); ok {
		return l
	}
	// 单值按单元素列表处理
	return []any{v}
}

func stringListField(m map[string]any, key string) []string {
	items := listField(m, key)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, coerceText(item))
	}
	return out
}

func mapItem(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
