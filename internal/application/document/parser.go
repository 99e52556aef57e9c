// Package document 解析上传文档，提取纯文本供建课分析使用
package document

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "coursecraft-api/pkg/errors"
)

// ParseRequest 文档解析请求，内容为 base64 编码的原始文件
type ParseRequest struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
	FileType string `json:"file_type"`
}

// ParseResponse 文档解析结果
type ParseResponse struct {
	Success   bool   `json:"success"`
	Content   string `json:"content"`
	Title     string `json:"title,omitempty"`
	WordCount int    `json:"word_count"`
	Error     string `json:"error,omitempty"`
}

// Parser 文档解析器
type Parser struct {
	maxUploadBytes int64
}

// NewParser 创建解析器，maxUploadBytes 为解码后大小上限，0 表示不限制
func NewParser(maxUploadBytes int64) *Parser {
	return &Parser{maxUploadBytes: maxUploadBytes}
}

var headingMarkerRe = regexp.MustCompile(`^#+\s*`)

// Parse 按文件类型解码并提取文本。
// 解析失败在响应体中报告，仅请求本身非法时返回错误。
func (p *Parser) Parse(req ParseRequest) (*ParseResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "content is required")
	}

	raw, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDocumentInvalid, "content is not valid base64")
	}
	if p.maxUploadBytes > 0 && int64(len(raw)) > p.maxUploadBytes {
		return nil, apperrors.New(apperrors.CodeDocumentInvalid,
			fmt.Sprintf("file exceeds maximum size of %d bytes", p.maxUploadBytes))
	}

	var content string
	switch strings.ToLower(req.FileType) {
	case "txt", "md":
		if !utf8.Valid(raw) {
			return failure("file is not valid UTF-8 text"), nil
		}
		content = string(raw)
	case "pdf":
		return failure("PDF parsing not available. Please copy-paste the content instead."), nil
	case "docx":
		content, err = extractDocxText(raw)
		if err != nil {
			return failure("DOCX parsing failed: " + err.Error()), nil
		}
	default:
		if !utf8.Valid(raw) {
			return failure("Unsupported file type: " + req.FileType), nil
		}
		content = string(raw)
	}

	return ParseText(content), nil
}

// ParseText 处理已是纯文本的内容，提取标题与词数
func ParseText(text string) *ParseResponse {
	content := strings.TrimSpace(text)
	title := ""
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			title = headingMarkerRe.ReplaceAllString(trimmed, "")
			break
		}
	}
	return &ParseResponse{
		Success:   true,
		Content:   content,
		Title:     title,
		WordCount: len(strings.Fields(content)),
	}
}

func failure(msg string) *ParseResponse {
	return &ParseResponse{Success: false, Error: msg}
}

// extractDocxText 读取 OOXML 包中的 word/document.xml，按段落拼接文本
func extractDocxText(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("not a valid docx archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docXML, err = f.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}
	defer docXML.Close()

	decoder := xml.NewDecoder(docXML)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return strings.Join(paragraphs, "\n"), nil
}
