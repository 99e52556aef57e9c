package export

import (
	"fmt"
	"strings"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/><Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/></Types>`

const docxRelsRoot = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/></Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:pPr><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style><w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:pPr><w:spacing w:before="200" w:after="100"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style></w:styles>`

// ExportWord 生成课程文档的 Word 导出，章节按标题层级组织
func ExportWord(req WordExportRequest) (out []byte, err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.ExportTotal.WithLabelValues("docx", status).Inc()
	}()

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "title is required")
	}

	var body strings.Builder
	body.WriteString(styledParagraph("Title", req.Title))

	if req.IncludeTOC {
		body.WriteString(styledParagraph("Heading1", "Table of Contents"))
		body.WriteString(plainParagraph("[Table of contents will be generated by Word]"))
		body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
	}

	for _, section := range req.Sections {
		body.WriteString(styledParagraph("Heading1", sectionTitle(section.Title, "Section")))
		if section.Content != "" {
			writeParagraphs(&body, section.Content)
		}
		for _, sub := range section.Subsections {
			body.WriteString(styledParagraph("Heading2", sectionTitle(sub.Title, "Subsection")))
			if sub.Content != "" {
				writeParagraphs(&body, sub.Content)
			}
		}
	}

	document := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`, body.String())

	return packOPC([]opcPart{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRelsRoot},
		{"word/document.xml", document},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
	})
}

func sectionTitle(title, fallback string) string {
	if strings.TrimSpace(title) == "" {
		return fallback
	}
	return title
}

func styledParagraph(style, text string) string {
	return fmt.Sprintf(`<w:p><w:pPr><w:pStyle w:val="%s"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, style, escape(text))
}

func plainParagraph(text string) string {
	return fmt.Sprintf(`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, escape(text))
}

// writeParagraphs 按空行拆分正文，保持段落结构
func writeParagraphs(sb *strings.Builder, content string) {
	for _, block := range strings.Split(content, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			sb.WriteString(plainParagraph(trimmed))
		}
	}
}
