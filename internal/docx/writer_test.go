package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(raw)
	}
	t.Fatalf("part %s missing", name)
	return ""
}

func TestWriter_PackageParts(t *testing.T) {
	w := NewWriter()
	w.AddParagraph("Hello", "", docModel.StyleRule{Font: "Calibri", Size: 12})
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}

	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		readPart(t, data, part)
	}

	ct := readPart(t, data, "[Content_Types].xml")
	if !strings.Contains(ct, "wordprocessingml.document.main+xml") {
		t.Error("content types missing main document override")
	}
}

func TestWriter_ParagraphFormatting(t *testing.T) {
	w := NewWriter()
	w.AddParagraph("Title & Terms", "Heading1", docModel.StyleRule{
		Font: "Calibri Light", Size: 16, Bold: true, Align: "center", Spacing: 1.15,
	})
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}
	doc := readPart(t, data, "word/document.xml")

	for _, want := range []string{
		`<w:pStyle w:val="Heading1"/>`,
		`<w:jc w:val="center"/>`,
		`<w:rFonts w:ascii="Calibri Light"`,
		`<w:sz w:val="32"/>`,
		`<w:b/>`,
		`<w:spacing w:line="276"`,
		`Title &amp; Terms`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %s", want)
		}
	}
	if strings.Contains(doc, "Title & Terms") {
		t.Error("ampersand not escaped")
	}
}

func TestWriter_JustifyMapsToBoth(t *testing.T) {
	w := NewWriter()
	w.AddParagraph("body", "", docModel.StyleRule{Align: "justify"})
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(readPart(t, data, "word/document.xml"), `<w:jc w:val="both"/>`) {
		t.Error("justify alignment should serialize as both")
	}
}

func TestWriter_NewlinesBecomeBreaks(t *testing.T) {
	w := NewWriter()
	w.AddParagraph("Signed: Alice\n\n_______", "", docModel.StyleRule{})
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}
	doc := readPart(t, data, "word/document.xml")
	if got := strings.Count(doc, "<w:br/>"); got != 2 {
		t.Errorf("breaks = %d, want 2", got)
	}
	if strings.Count(doc, "<w:p>") != 1 {
		t.Error("multi-line text must stay one paragraph")
	}
}

func TestWriter_TwoColumnTable(t *testing.T) {
	w := NewWriter()
	w.AddTwoColumnTable(
		[]string{"Disclosing Party:", "Alice"},
		[]string{"Receiving Party:", "TechNova"},
		docModel.StyleRule{Font: "Times New Roman", Size: 12},
	)
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}
	doc := readPart(t, data, "word/document.xml")

	if strings.Count(doc, "<w:tc>") != 2 {
		t.Errorf("cells = %d, want 2", strings.Count(doc, "<w:tc>"))
	}
	if strings.Contains(doc, "<w:tblBorders>") {
		t.Error("signature table must stay borderless")
	}
	for _, want := range []string{"Alice", "TechNova"} {
		if !strings.Contains(doc, want) {
			t.Errorf("table missing %s", want)
		}
	}
}
