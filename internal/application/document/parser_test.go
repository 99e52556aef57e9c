package document

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// buildDocx 构造只含 word/document.xml 的最小 OOXML 包
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseTxt(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode([]byte("# Kursintroduktion\n\nDetta är första stycket.")),
		Filename: "manus.txt",
		FileType: "txt",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.Equal(t, "Kursintroduktion", resp.Title)
	assert.Equal(t, 6, resp.WordCount)
}

func TestParseMarkdown(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode([]byte("## Underrubrik\ninnehåll")),
		FileType: "md",
	})
	require.NoError(t, err)
	assert.Equal(t, "Underrubrik", resp.Title)
}

func TestParseDocx(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Kapitel ett</w:t></w:r></w:p>
    <w:p><w:r><w:t>Första </w:t></w:r><w:r><w:t>stycket.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode(buildDocx(t, docXML)),
		Filename: "manus.docx",
		FileType: "docx",
	})
	require.NoError(t, err)
	require.True(t, resp.Success, "error: %s", resp.Error)

	assert.Equal(t, "Kapitel ett", resp.Title)
	// 同段多个 w:r 文本拼接为一行
	assert.Contains(t, resp.Content, "Första stycket.")
}

func TestParseDocxCorruptArchive(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode([]byte("inte en zip")),
		FileType: "docx",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "DOCX parsing failed")
}

func TestParsePdfUnsupported(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{Content: encode([]byte("%PDF-1.4")), FileType: "pdf"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "PDF parsing not available")
}

func TestParseInvalidBase64(t *testing.T) {
	p := NewParser(0)

	_, err := p.Parse(ParseRequest{Content: "!!! not base64 !!!", FileType: "txt"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDocumentInvalid))
}

func TestParseEmptyContent(t *testing.T) {
	p := NewParser(0)

	_, err := p.Parse(ParseRequest{Content: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestParseSizeLimit(t *testing.T) {
	p := NewParser(8)

	_, err := p.Parse(ParseRequest{
		Content:  encode([]byte("detta är mer än åtta byte")),
		FileType: "txt",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDocumentInvalid))
}

func TestParseUnknownTypeFallsBackToText(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode([]byte("rtf-liknande innehåll")),
		FileType: "rtf",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "rtf-liknande innehåll", resp.Content)
}

func TestParseInvalidUTF8(t *testing.T) {
	p := NewParser(0)

	resp, err := p.Parse(ParseRequest{
		Content:  encode([]byte{0xff, 0xfe, 0xfd}),
		FileType: "txt",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestParseText(t *testing.T) {
	resp := ParseText("\n\n  # Titel med brus  \nbrödtext här\n")
	assert.True(t, resp.Success)
	assert.Equal(t, "Titel med brus", resp.Title)
	assert.Equal(t, 6, resp.WordCount)
}
