// Package export 生成可下载的课程产物：PPTX、DOCX 与 HTML
package export

// ExportSlide 导出用幻灯片数据
type ExportSlide struct {
	Title        string   `json:"title"`
	Content      string   `json:"content,omitempty"`
	BulletPoints []string `json:"bullet_points,omitempty"`
	SpeakerNotes string   `json:"speaker_notes,omitempty"`
	Layout       string   `json:"layout,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// SlidesExportRequest 幻灯片导出请求
type SlidesExportRequest struct {
	Slides   []ExportSlide `json:"slides"`
	Title    string        `json:"title"`
	Format   string        `json:"format"`
	Template string        `json:"template,omitempty"`
}

// WordSection 文档章节，可嵌套一层子章节
type WordSection struct {
	Title       string        `json:"title"`
	Content     string        `json:"content,omitempty"`
	Subsections []WordSection `json:"subsections,omitempty"`
}

// WordExportRequest Word 文档导出请求
type WordExportRequest struct {
	Title      string        `json:"title"`
	Sections   []WordSection `json:"sections"`
	IncludeTOC bool          `json:"include_toc"`
}
