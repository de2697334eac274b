// ABOUTME: Loads supported document types into raw text units for ingestion
// ABOUTME: PDFs yield one unit per page, plain text yields a single unit
package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/platonbot/platon/internal/models"
)

// loadDocument reads the file at path into one or more text units. The
// format check runs before any other work so unsupported files fail with no
// side effects.
func loadDocument(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return loadPDF(path)
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return []string{string(data)}, nil
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), models.ErrUnsupportedFormat)
	}
}

// loadPDF extracts plain text page by page.
func loadPDF(path string) ([]string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer file.Close()

	var pages []string
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d of %s: %w", num, path, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
