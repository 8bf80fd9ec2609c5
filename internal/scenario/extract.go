// Package scenario turns uploaded files into scenario text and validates it
// before the pipeline runs.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

var logger = logging.NewLogger("Scenario")

const pageExtractTimeout = 10 * time.Second

type fileKind int

const (
	kindPDF fileKind = iota
	kindCat
	kindUnsupported
)

func kindForPath(path string) fileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return kindPDF
	case ".docx", ".txt", ".rtf", ".odt":
		return kindCat
	default:
		return kindUnsupported
	}
}

// FromFile extracts plain text from an uploaded scenario file. The format is
// picked by extension: pdf goes through page extraction, docx/txt/rtf/odt
// through cat. Anything else is a request error.
func FromFile(path string) (string, error) {
	switch kindForPath(path) {
	case kindPDF:
		return extractPDF(path)
	case kindCat:
		text, err := cat.File(path)
		if err != nil {
			logger.Error("Extracting text from document failed", "file", filepath.Base(path), "error", err)
			return "", fmt.Errorf("%w: could not read scenario file: %v", docModel.ErrRequest, err)
		}
		return text, nil
	default:
		return "", fmt.Errorf("%w: unsupported scenario file type %q", docModel.ErrRequest, filepath.Ext(path))
	}
}

func extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("Opening pdf failed", "file", filepath.Base(path), "error", err)
		return "", fmt.Errorf("%w: could not open pdf: %v", docModel.ErrRequest, err)
	}

	var b strings.Builder
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := protectExtract(page)
		if err != nil {
			// A bad page should not sink the rest of the document.
			logger.Warn("Skipping unreadable pdf page", "page", i, "error", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(content)
	}
	return b.String(), nil
}

// protectExtract guards a single page extraction with a timeout. Malformed
// pdfs can make GetPlainText spin.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(pageExtractTimeout):
		return "", errors.New("page extraction timed out")
	}
}

// Validate normalizes scenario text and enforces the length bounds. The
// returned string is the trimmed form the pipeline should use.
func Validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	length := utf8.RuneCountInString(trimmed)
	if length < config.MinScenarioLength {
		return "", fmt.Errorf("%w: scenario must be at least %d characters", docModel.ErrRequest, config.MinScenarioLength)
	}
	if length > config.MaxScenarioLength {
		return "", fmt.Errorf("%w: scenario must be at most %d characters", docModel.ErrRequest, config.MaxScenarioLength)
	}
	return trimmed, nil
}
