package node

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Extraction 表示一次 JSON 提取的结果：成功载荷或失败原因。
// 模型输出格式不对是常态而非异常，所以用结果值而不是 error 表达。
type Extraction struct {
	Payload map[string]any
	RawJSON []byte
	Reason  string
}

// OK 提取是否成功
func (e Extraction) OK() bool {
	return e.Payload != nil
}

var fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON 从模型回复中提取 JSON 对象。
// 顺序是有意为之：先找围栏代码块，再严格解析，最后才做首 { 到末 } 的扫描，
// 否则正文里的花括号会误触发扫描路径。
func ExtractJSON(raw string) Extraction {
	candidate := strings.TrimSpace(raw)
	if m := fencedBlockRe.FindStringSubmatch(raw); m != nil {
		candidate = strings.TrimSpace(m[1])
	}

	var payload map[string]any
	err := json.Unmarshal([]byte(candidate), &payload)
	if err == nil {
		return Extraction{Payload: payload, RawJSON: []byte(candidate)}
	}

	// 括号扫描兜底：在原始文本中取第一个 { 到最后一个 }
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		span := raw[start : end+1]
		var scanned map[string]any
		if err2 := json.Unmarshal([]byte(span), &scanned); err2 == nil {
			return Extraction{Payload: scanned, RawJSON: []byte(span)}
		}
	}

	return Extraction{Reason: err.Error()}
}
