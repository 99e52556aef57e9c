package export

import (
	"fmt"
	"strings"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"
)

// PPTX 直接按 OOXML 规范手工组包：
// 单一空白版式 + 逐页文本框，便于设计师二次编辑。

const emuPerInch = 914400

const pptxRelsRoot = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`

const pptxTheme = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office"><a:themeElements><a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1><a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2><a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme><a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`

const pptxSlideMaster = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/><p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`

const pptxSlideMasterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/></Relationships>`

const pptxSlideLayout = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank" preserve="1"><p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

const pptxSlideLayoutRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/></Relationships>`

const pptxNotesMaster = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:notesMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:notesMaster>`

const pptxNotesMasterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/></Relationships>`

// ExportSlidesPPTX 生成 PowerPoint 演示文稿。
// 首页为标题页，末尾附一页设计说明；讲者备注写入 notes 页。
func ExportSlidesPPTX(req SlidesExportRequest) (out []byte, err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.ExportTotal.WithLabelValues("pptx", status).Inc()
	}()

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "title is required")
	}

	slides := buildSlideXMLs(req)
	parts := []opcPart{
		{"[Content_Types].xml", pptxContentTypes(slides)},
		{"_rels/.rels", pptxRelsRoot},
		{"ppt/presentation.xml", pptxPresentationXML(len(slides))},
		{"ppt/_rels/presentation.xml.rels", pptxPresentationRels(len(slides))},
		{"ppt/theme/theme1.xml", pptxTheme},
		{"ppt/slideMasters/slideMaster1.xml", pptxSlideMaster},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", pptxSlideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", pptxSlideLayout},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", pptxSlideLayoutRels},
		{"ppt/notesMasters/notesMaster1.xml", pptxNotesMaster},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", pptxNotesMasterRels},
	}
	for i, s := range slides {
		n := i + 1
		parts = append(parts,
			opcPart{fmt.Sprintf("ppt/slides/slide%d.xml", n), s.xml},
			opcPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(n, s.notes != "")},
		)
		if s.notes != "" {
			parts = append(parts,
				opcPart{fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n), notesSlideXML(s.notes)},
				opcPart{fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", n), notesSlideRels(n)},
			)
		}
	}
	return packOPC(parts)
}

type builtSlide struct {
	xml   string
	notes string
}

func buildSlideXMLs(req SlidesExportRequest) []builtSlide {
	slides := make([]builtSlide, 0, len(req.Slides)+2)

	// 标题页
	titleBody := paragraph(escape(req.Title), 4400, true, "000000", "ctr")
	slides = append(slides, builtSlide{
		xml: slideXML(textBox(2, "Title", inches(0.5), inches(2.8), inches(9), inches(1.5), titleBody)),
	})

	for _, s := range req.Slides {
		shapes := textBox(2, "Title", inches(0.5), inches(0.5), inches(9), inches(1),
			paragraph(escape(s.Title), 3200, true, "000000", ""))

		contentTop := 1.8
		if s.Content != "" && len(s.BulletPoints) == 0 {
			subtitle := s.Content
			if len([]rune(subtitle)) > 200 {
				subtitle = string([]rune(subtitle)[:200])
			}
			shapes += textBox(3, "Subtitle", inches(0.5), inches(1.2), inches(9), inches(0.5),
				paragraph(escape(subtitle), 1800, false, "646464", ""))
			contentTop = 2.2
		}

		if len(s.BulletPoints) > 0 {
			var body strings.Builder
			for _, point := range s.BulletPoints {
				body.WriteString(paragraph(escape(stripBulletPrefix(point)), 2000, false, "323232", ""))
			}
			shapes += textBox(4, "Content", inches(1), inches(contentTop), inches(8), inches(4), body.String())
		}

		slides = append(slides, builtSlide{
			xml:   slideXML(shapes),
			notes: designerNotes(s),
		})
	}

	// 末页设计说明，方便交付后的人工美化
	var final strings.Builder
	final.WriteString(paragraph("DESIGNER NOTES", 2800, true, "000000", ""))
	for _, line := range []string{
		"This presentation has been structured for professional design enhancement.",
		fmt.Sprintf("Content slides: %d", len(req.Slides)),
		"Speaker notes contain layout and visual guidance per slide.",
		"Apply consistent brand colors and fonts.",
		"Maintain readability (minimum 18pt body text).",
	} {
		final.WriteString(paragraph(escape(line), 1600, false, "323232", ""))
	}
	slides = append(slides, builtSlide{
		xml: slideXML(textBox(2, "Notes", inches(1), inches(1), inches(8), inches(5), final.String())),
	})

	return slides
}

// designerNotes 汇总讲者备注与设计建议，写入 notes 页
func designerNotes(s ExportSlide) string {
	var lines []string
	if s.SpeakerNotes != "" {
		lines = append(lines, "CONTENT NOTES:", s.SpeakerNotes, "")
	}
	if s.Layout != "" {
		lines = append(lines, "SUGGESTED LAYOUT: "+s.Layout, "")
	}
	if s.ImageURL != "" || len(s.BulletPoints) > 3 {
		lines = append(lines, "DESIGN SUGGESTIONS:")
		if s.ImageURL != "" {
			lines = append(lines, "- Suggested image: "+s.ImageURL)
		}
		lines = append(lines,
			"- Consider adding visual elements (icons, illustrations, or photos)",
			"- Use whitespace effectively",
			"")
	}
	if len(s.BulletPoints) > 0 {
		lines = append(lines, fmt.Sprintf("CONTENT STRUCTURE: %d key points", len(s.BulletPoints)))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

func paragraph(escapedText string, size int, bold bool, color, align string) string {
	b := "0"
	if bold {
		b = "1"
	}
	pPr := ""
	if align != "" {
		pPr = fmt.Sprintf(`<a:pPr algn="%s"/>`, align)
	}
	return fmt.Sprintf(`<a:p>%s<a:r><a:rPr lang="sv-SE" sz="%d" b="%s"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr><a:t>%s</a:t></a:r></a:p>`,
		pPr, size, b, color, escapedText)
}

func textBox(id int, name string, x, y, cx, cy int64, paragraphs string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr><p:txBody><a:bodyPr wrap="square"/><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, name, x, y, cx, cy, paragraphs)
}

func slideXML(shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		shapes +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`
}

func notesSlideXML(notes string) string {
	var body strings.Builder
	for _, line := range strings.Split(notes, "\n") {
		body.WriteString(fmt.Sprintf(`<a:p><a:r><a:rPr lang="sv-SE" sz="1200"/><a:t>%s</a:t></a:r></a:p>`, escape(line)))
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		textBox(2, "Notes", inches(0.5), inches(0.5), inches(6.5), inches(9), body.String()) +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>`
}

func pptxContentTypes(slides []builtSlide) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/><Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/><Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/><Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/><Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i, s := range slides {
		sb.WriteString(fmt.Sprintf(`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1))
		if s.notes != "" {
			sb.WriteString(fmt.Sprintf(`<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, i+1))
		}
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

func pptxPresentationXML(slideCount int) string {
	var sldIDs strings.Builder
	for i := 0; i < slideCount; i++ {
		sldIDs.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 3+i))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst><p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst><p:sldIdLst>%s</p:sldIdLst><p:sldSz cx="%d" cy="%d"/><p:notesSz cx="%d" cy="%d"/></p:presentation>`,
		sldIDs.String(), inches(10), inches(7.5), inches(7.5), inches(10))
}

func pptxPresentationRels(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="notesMasters/notesMaster1.xml"/>`)
	for i := 0; i < slideCount; i++ {
		sb.WriteString(fmt.Sprintf(`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 3+i, i+1))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func slideRels(n int, hasNotes bool) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
	if hasNotes {
		sb.WriteString(fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`, n))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func notesSlideRels(n int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/></Relationships>`, n)
}
