// Package textextract turns uploaded résumé files into plain text.
package textextract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ErrUnsupportedType is returned for file extensions that cannot be converted.
var ErrUnsupportedType = errors.New("unsupported résumé file type")

var documentTypes = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".rtf":  true,
	".odt":  true,
}

// Supported reports whether a file name has an extension Extract can handle.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".txt" || documentTypes[ext]
}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path. PDF and office formats go through docconv, which
// shells out to pdftotext, wvText and unrtf for some formats.
func (e *Extractor) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case documentTypes[ext]:
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to parse document: %w", err)
		}
		return strings.TrimSpace(res.Body), nil
	case ext == ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}
