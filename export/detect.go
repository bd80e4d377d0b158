package export

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Detect determines the export format from a filename extension.
func Detect(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV, true
	case ".json":
		return JSON, true
	case ".html", ".htm":
		return HTML, true
	case ".xlsx":
		return Excel, true
	default:
		return CSV, false
	}
}

// DetectFromMagic inspects the leading bytes of exported content. CSV has
// no signature, so quoted text that is not json or html is reported as csv.
func DetectFromMagic(data []byte) (Format, bool) {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return CSV, false
	}

	// ZIP magic (xlsx is a ZIP archive): PK\x03\x04
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return Excel, true
	}

	switch data[0] {
	case '[', '{':
		return JSON, true
	case '<':
		return HTML, true
	case '"':
		return CSV, true
	}
	return CSV, false
}
