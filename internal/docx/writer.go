// Package docx writes minimal WordprocessingML packages: a [Content_Types].xml,
// the package relationships and a single word/document.xml. That subset is all
// the assembler needs and keeps the output readable by Word, LibreOffice and
// Google Docs.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentOpen  = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" + `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr></w:body></w:document>`
)

// Writer accumulates body blocks and serializes them into a .docx package.
type Writer struct {
	body bytes.Buffer
}

func NewWriter() *Writer {
	return &Writer{}
}

// AddParagraph appends one paragraph. Newlines inside text become soft line
// breaks within the paragraph. styleID is the named Word style to tag the
// paragraph with ("Heading1", "Heading2") and may be empty.
func (w *Writer) AddParagraph(text string, styleID string, rule docModel.StyleRule) {
	w.body.WriteString(paragraphXML(text, styleID, rule))
}

// AddTwoColumnTable appends a borderless table with a single row of two equal
// cells, each holding its lines as paragraphs. Contract signature blocks use
// this to put the parties side by side.
func (w *Writer) AddTwoColumnTable(left, right []string, rule docModel.StyleRule) {
	w.body.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/><w:tblLayout w:type="fixed"/></w:tblPr>`)
	w.body.WriteString(`<w:tblGrid><w:gridCol w:w="4675"/><w:gridCol w:w="4675"/></w:tblGrid><w:tr>`)
	for _, lines := range [][]string{left, right} {
		w.body.WriteString(`<w:tc><w:tcPr><w:tcW w:w="2500" w:type="pct"/></w:tcPr>`)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, line := range lines {
			w.body.WriteString(paragraphXML(line, "", rule))
		}
		w.body.WriteString(`</w:tc>`)
	}
	w.body.WriteString(`</w:tr></w:tbl>`)
}

// Save serializes the accumulated document into .docx bytes.
func (w *Writer) Save() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentOpen + w.body.String() + documentClose},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

func paragraphXML(text string, styleID string, rule docModel.StyleRule) string {
	var b strings.Builder
	b.WriteString(`<w:p><w:pPr>`)
	if styleID != "" {
		b.WriteString(`<w:pStyle w:val="` + styleID + `"/>`)
	}
	if jc := alignValue(rule.Align); jc != "" {
		b.WriteString(`<w:jc w:val="` + jc + `"/>`)
	}
	if rule.Spacing > 0 {
		line := int(math.Round(rule.Spacing * 240))
		b.WriteString(fmt.Sprintf(`<w:spacing w:line="%d" w:lineRule="auto"/>`, line))
	}
	props := runPropsXML(rule)
	b.WriteString(props)
	b.WriteString(`</w:pPr>`)

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString(`<w:r>` + props + `<w:br/></w:r>`)
		}
		if line == "" {
			continue
		}
		b.WriteString(`<w:r>` + props + `<w:t xml:space="preserve">` + escape(line) + `</w:t></w:r>`)
	}
	b.WriteString(`</w:p>`)
	return b.String()
}

// runPropsXML renders the run properties of a rule. Word stores font sizes in
// half-points.
func runPropsXML(rule docModel.StyleRule) string {
	var b strings.Builder
	b.WriteString(`<w:rPr>`)
	if rule.Font != "" {
		f := escape(rule.Font)
		b.WriteString(`<w:rFonts w:ascii="` + f + `" w:hAnsi="` + f + `"/>`)
	}
	if rule.Bold {
		b.WriteString(`<w:b/>`)
	}
	if rule.Italic {
		b.WriteString(`<w:i/>`)
	}
	if rule.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if rule.Size > 0 {
		half := int(math.Round(rule.Size * 2))
		b.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, half, half))
	}
	b.WriteString(`</w:rPr>`)
	return b.String()
}

func alignValue(align string) string {
	switch align {
	case "justify":
		return "both"
	case "left", "center", "right":
		return align
	default:
		return ""
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
