package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"interview-assistant/internal/apperr"
)

type TextExtractor interface {
	ExtractText(data []byte, filename string) (string, error)
	EnsureUploadDir() error
}

type textExtractor struct {
	uploadPath string
}

func NewTextExtractor(uploadPath string) TextExtractor {
	return &textExtractor{
		uploadPath: uploadPath,
	}
}

func (e *textExtractor) EnsureUploadDir() error {
	if err := os.MkdirAll(e.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// ExtractText stages the upload as a temporary file, dispatches on the
// declared extension, and removes the staged file on every exit path.
func (e *textExtractor) ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	stagedPath := filepath.Join(e.uploadPath, fmt.Sprintf("resume_%s%s", uuid.New().String(), ext))
	if err := os.WriteFile(stagedPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	defer os.Remove(stagedPath)

	switch ext {
	case ".pdf":
		return extractPDF(stagedPath)
	case ".docx":
		return extractDOCX(stagedPath)
	default:
		return "", fmt.Errorf("%w: %s", apperr.ErrUnsupportedFormat, ext)
	}
}

func extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", apperr.ErrExtractionFailed, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	// A PDF with no extractable text yields an empty string, not an error.
	return textBuilder.String(), nil
}

func extractDOCX(filePath string) (string, error) {
	res, err := docconv.ConvertPath(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to convert DOCX: %v", apperr.ErrExtractionFailed, err)
	}

	return res.Body, nil
}
