package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func TestExportWord(t *testing.T) {
	req := WordExportRequest{
		Title:      "Go-kurs: kompendium",
		IncludeTOC: true,
		Sections: []WordSection{
			{
				Title:   "Introduktion",
				Content: "Första stycket.\n\nAndra stycket.",
				Subsections: []WordSection{
					{Title: "Bakgrund", Content: "Lite historia om Go."},
				},
			},
			{Title: "", Content: "Avsnitt utan rubrik."},
		},
	}

	data, err := ExportWord(req)
	require.NoError(t, err)
	files := readArchive(t, data)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
	} {
		assert.Contains(t, files, name, name)
	}

	doc := files["word/document.xml"]
	assert.Contains(t, doc, `<w:pStyle w:val="Title"/>`)
	assert.Contains(t, doc, "Go-kurs: kompendium")
	assert.Contains(t, doc, "Table of Contents")
	assert.Contains(t, doc, `<w:br w:type="page"/>`)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading1"/>`)
	assert.Contains(t, doc, `<w:pStyle w:val="Heading2"/>`)
	assert.Contains(t, doc, "Bakgrund")

	// 空行分段：两个段落分开落盘
	assert.Contains(t, doc, "Första stycket.")
	assert.Contains(t, doc, "Andra stycket.")
	assert.Equal(t, 2, strings.Count(doc, "stycket.</w:t>"))

	// 空章节标题落到占位名
	assert.Contains(t, doc, ">Section</w:t>")
}

func TestExportWordMissingTitle(t *testing.T) {
	_, err := ExportWord(WordExportRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestExportWordEscapesXML(t *testing.T) {
	data, err := ExportWord(WordExportRequest{
		Title:    "Jämförelse: A < B & C",
		Sections: []WordSection{{Title: "Del 1", Content: `Citat: "hej"`}},
	})
	require.NoError(t, err)
	files := readArchive(t, data)

	doc := files["word/document.xml"]
	assert.Contains(t, doc, "A &lt; B &amp; C")
	assert.Contains(t, doc, "&quot;hej&quot;")
	assert.NotContains(t, doc, "A < B")
}

func TestExportWordWithoutTOC(t *testing.T) {
	data, err := ExportWord(WordExportRequest{Title: "Kort dokument"})
	require.NoError(t, err)
	files := readArchive(t, data)
	assert.NotContains(t, files["word/document.xml"], "Table of Contents")
}
