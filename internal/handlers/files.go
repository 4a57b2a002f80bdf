package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	maxPassportScanSize = 5 * 1024 * 1024
	maxDocumentSize     = 10 * 1024 * 1024
	maxSpreadsheetSize  = 10 * 1024 * 1024
)

var passportScanMimes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

var documentMimes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
}

var spreadsheetMimes = map[string]bool{
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel.sheet.macroEnabled.12":                    true,
	"text/csv": true,
}

// checkUpload rejects a multipart file before anything is written to
// disk: wrong declared MIME type or over the size cap.
func checkUpload(fh *multipart.FileHeader, allowed map[string]bool, maxSize int64) error {
	mime := strings.TrimSpace(strings.Split(fh.Header.Get("Content-Type"), ";")[0])
	if !allowed[mime] {
		return fmt.Errorf("invalid file type %q", mime)
	}
	if fh.Size > maxSize {
		return fmt.Errorf("file exceeds the %dMB limit", maxSize/(1024*1024))
	}
	return nil
}

// contentTypeByExt maps a stored filename to the Content-Type it
// should be served with.
func contentTypeByExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}
