package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want fileKind
	}{
		{"scenario.pdf", kindPDF},
		{"Scenario.PDF", kindPDF},
		{"notes.docx", kindCat},
		{"notes.txt", kindCat},
		{"notes.rtf", kindCat},
		{"notes.odt", kindCat},
		{"image.png", kindUnsupported},
		{"noextension", kindUnsupported},
	}
	for _, tt := range tests {
		if got := kindForPath(tt.path); got != tt.want {
			t.Errorf("kindForPath(%s) = %v; want %v", tt.path, got, tt.want)
		}
	}
}

func TestFromFile_TxtAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.txt")
	if err := os.WriteFile(path, []byte("Alice hires TechNova for two years."), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := FromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "TechNova") {
		t.Errorf("text = %q", text)
	}

	_, err = FromFile(filepath.Join(dir, "scenario.png"))
	if !errors.Is(err, docModel.ErrRequest) {
		t.Errorf("unsupported extension: err = %v, want ErrRequest", err)
	}
}

func TestFromFile_CorruptPdf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(path); !errors.Is(err, docModel.ErrRequest) {
		t.Errorf("corrupt pdf: err = %v, want ErrRequest", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"ok", "Alice signs an NDA with TechNova.", false},
		{"trimmed", "   Alice signs an NDA with TechNova.   ", false},
		{"too short", "hi", true},
		{"whitespace only", "         ", true},
		{"too long", strings.Repeat("a", 8001), true},
		{"at limit", strings.Repeat("a", 8000), false},
		// Bounds count runes, not bytes.
		{"multibyte below minimum", strings.Repeat("ü", 9), true},
		{"multibyte at minimum", strings.Repeat("契", 10), false},
		{"multibyte at maximum", strings.Repeat("契", 8000), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(tc.in)
			if tc.wantErr {
				if !errors.Is(err, docModel.ErrRequest) {
					t.Errorf("err = %v, want ErrRequest", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != strings.TrimSpace(tc.in) {
				t.Errorf("got %q, want trimmed input", got)
			}
		})
	}
}
