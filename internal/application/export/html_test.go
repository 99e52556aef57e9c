package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func TestExportSlidesHTML(t *testing.T) {
	req := SlidesExportRequest{
		Title: "Go-kurs",
		Slides: []ExportSlide{
			{Title: "Punkter", BulletPoints: []string{"Ett", "Två"}, SpeakerNotes: "Ta det lugnt."},
			{Title: "Text", Content: "Ett stycke brödtext."},
		},
	}

	html, err := ExportSlidesHTML(req)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Go-kurs</title>")
	assert.Contains(t, html, "<li>Ett</li>")
	assert.Contains(t, html, "<li>Två</li>")
	assert.Contains(t, html, "<p>Ett stycke brödtext.</p>")
	assert.Contains(t, html, "Speaker Notes:")
	// 标题页 + 2 内容页
	assert.Equal(t, 3, strings.Count(html, `<div class="slide">`))
}

func TestExportSlidesHTMLEscapes(t *testing.T) {
	html, err := ExportSlidesHTML(SlidesExportRequest{
		Title:  "Kurs",
		Slides: []ExportSlide{{Title: "<script>alert(1)</script>"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestExportSlidesHTMLMissingTitle(t *testing.T) {
	_, err := ExportSlidesHTML(SlidesExportRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestExportSlidesHTMLBulletsWinOverContent(t *testing.T) {
	html, err := ExportSlidesHTML(SlidesExportRequest{
		Title:  "Kurs",
		Slides: []ExportSlide{{Title: "Blandat", Content: "osynlig text", BulletPoints: []string{"synlig punkt"}}},
	})
	require.NoError(t, err)
	assert.Contains(t, html, "synlig punkt")
	assert.NotContains(t, html, "osynlig text")
}
