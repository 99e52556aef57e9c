package export

import (
	"archive/zip"
	"bytes"
	"strings"

	apperrors "coursecraft-api/pkg/errors"
)

// OOXML 文档本质是约定目录结构的 zip 包。
// 这里集中放打包与转义的底层工具，PPTX/DOCX 共用。

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// stripBulletPrefix 去掉模型输出里自带的项目符号，避免双重符号
func stripBulletPrefix(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, prefix := range []string{"•", "-", "*"} {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		}
	}
	return trimmed
}

type opcPart struct {
	name string
	data string
}

func packOPC(parts []opcPart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExportFailed, "failed to create archive entry")
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExportFailed, "failed to write archive entry")
		}
	}
	if err := zw.Close(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExportFailed, "failed to finalize archive")
	}
	return buf.Bytes(), nil
}
