package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(content)
	}
	return files
}

func TestExportSlidesPPTX(t *testing.T) {
	req := SlidesExportRequest{
		Title: "Go-kurs",
		Slides: []ExportSlide{
			{
				Title:        "Introduktion",
				BulletPoints: []string{"• Vad är Go?", "- Historik", "Användningsområden"},
				SpeakerNotes: "Hälsa publiken välkommen.",
				Layout:       "bullet-points",
			},
			{
				Title:   "Sammanfattning",
				Content: "Go är enkelt & kraftfullt.",
			},
		},
	}

	data, err := ExportSlidesPPTX(req)
	require.NoError(t, err)
	files := readArchive(t, data)

	// 标题页 + 2 内容页 + 设计说明页
	assert.Contains(t, files, "ppt/slides/slide1.xml")
	assert.Contains(t, files, "ppt/slides/slide2.xml")
	assert.Contains(t, files, "ppt/slides/slide3.xml")
	assert.Contains(t, files, "ppt/slides/slide4.xml")
	assert.NotContains(t, files, "ppt/slides/slide5.xml")

	assert.Contains(t, files["ppt/slides/slide1.xml"], "Go-kurs")
	assert.Contains(t, files["ppt/slides/slide4.xml"], "DESIGNER NOTES")

	// 自带项目符号被剥掉，避免双重符号
	slide2 := files["ppt/slides/slide2.xml"]
	assert.Contains(t, slide2, "Vad är Go?")
	assert.NotContains(t, slide2, "• Vad")
	assert.NotContains(t, slide2, "- Historik")

	// XML 特殊字符转义
	assert.Contains(t, files["ppt/slides/slide3.xml"], "enkelt &amp; kraftfullt")

	// 有讲者备注的页带 notes 部件，其它页没有
	assert.Contains(t, files, "ppt/notesSlides/notesSlide2.xml")
	assert.NotContains(t, files, "ppt/notesSlides/notesSlide3.xml")
	assert.Contains(t, files["ppt/notesSlides/notesSlide2.xml"], "Hälsa publiken välkommen.")
	assert.Contains(t, files["ppt/notesSlides/notesSlide2.xml"], "SUGGESTED LAYOUT: bullet-points")

	// 包骨架完整
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/notesMasters/notesMaster1.xml",
	} {
		assert.Contains(t, files, name, name)
	}

	// 每页都在 presentation.xml 与 Content_Types 中注册
	assert.Contains(t, files["ppt/presentation.xml"], `r:id="rId6"`)
	assert.Equal(t, 4, strings.Count(files["[Content_Types].xml"], "presentationml.slide+xml"))
}

func TestExportSlidesPPTXMissingTitle(t *testing.T) {
	_, err := ExportSlidesPPTX(SlidesExportRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestExportSlidesPPTXEmptyDeck(t *testing.T) {
	data, err := ExportSlidesPPTX(SlidesExportRequest{Title: "Tom kurs"})
	require.NoError(t, err)
	files := readArchive(t, data)

	// 仅标题页和设计说明页
	assert.Contains(t, files, "ppt/slides/slide2.xml")
	assert.NotContains(t, files, "ppt/slides/slide3.xml")
}

func TestDesignerNotes(t *testing.T) {
	got := designerNotes(ExportSlide{
		SpeakerNotes: "Prata långsamt.",
		Layout:       "two-column",
		ImageURL:     "https://example.com/bild.jpg",
		BulletPoints: []string{"a", "b", "c", "d"},
	})
	assert.Contains(t, got, "CONTENT NOTES:")
	assert.Contains(t, got, "SUGGESTED LAYOUT: two-column")
	assert.Contains(t, got, "Suggested image: https://example.com/bild.jpg")
	assert.Contains(t, got, "CONTENT STRUCTURE: 4 key points")

	assert.Empty(t, designerNotes(ExportSlide{}))
}

func TestStripBulletPrefix(t *testing.T) {
	assert.Equal(t, "punkt", stripBulletPrefix("• punkt"))
	assert.Equal(t, "punkt", stripBulletPrefix("- punkt"))
	assert.Equal(t, "punkt", stripBulletPrefix("* punkt"))
	assert.Equal(t, "punkt", stripBulletPrefix("  punkt  "))
	assert.Equal(t, "oförändrad text", stripBulletPrefix("oförändrad text"))
}
