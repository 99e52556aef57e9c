package export

import (
	"html/template"
	"strings"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"
)

var slidesHTMLTemplate = template.Must(template.New("slides").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 20px; }
        .slide {
            page-break-after: always;
            border: 1px solid #ddd;
            padding: 40px;
            margin-bottom: 20px;
            min-height: 500px;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            border-radius: 8px;
        }
        .slide h1 { font-size: 2.5em; margin-bottom: 30px; }
        .slide ul { font-size: 1.3em; line-height: 1.8; }
        .slide p { font-size: 1.2em; line-height: 1.6; }
        .notes {
            background: #f5f5f5;
            padding: 15px;
            margin-top: 20px;
            border-left: 4px solid #667eea;
            color: #333;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <div class="slide">
        <h1>{{.Title}}</h1>
    </div>
{{range .Slides}}    <div class="slide">
        <h1>{{.Title}}</h1>
{{if .BulletPoints}}        <ul>
{{range .BulletPoints}}            <li>{{.}}</li>
{{end}}        </ul>
{{else if .Content}}        <p>{{.Content}}</p>
{{end}}{{if .SpeakerNotes}}        <div class="notes"><strong>Speaker Notes:</strong> {{.SpeakerNotes}}</div>
{{end}}    </div>
{{end}}</body>
</html>
`))

// ExportSlidesHTML 生成幻灯片的 HTML 版本，可供浏览器打印为 PDF
func ExportSlidesHTML(req SlidesExportRequest) (html string, err error) {
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.ExportTotal.WithLabelValues("html", status).Inc()
	}()

	if strings.TrimSpace(req.Title) == "" {
		return "", apperrors.New(apperrors.CodeInvalidParam, "title is required")
	}

	var sb strings.Builder
	if err := slidesHTMLTemplate.Execute(&sb, req); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeExportFailed, "html rendering failed")
	}
	return sb.String(), nil
}
