package style

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// SampleReference reads an uploaded .docx template and samples formatting from
// its paragraphs: the first styled occurrence of each section kind wins. Only
// kinds actually present in the template are returned, so the result is meant
// to be merged over a full StyleSet. Any structural problem with the file is
// returned as an error; callers degrade to defaults and record a warning.
func SampleReference(data []byte) (StyleSet, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, errors.New("not a word document: word/document.xml missing")
	}

	rc, err := doc.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	var parsed refDocument
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	sampled := StyleSet{}
	for _, p := range parsed.Paras {
		if !p.hasText() {
			continue
		}
		kind := kindForStyleID(p.styleID())
		if _, done := sampled[kind]; done {
			continue
		}
		sampled[kind] = p.rule()
	}
	if len(sampled) == 0 {
		return nil, errors.New("no styled paragraphs in template")
	}
	return sampled, nil
}

// Merge layers sampled rules over base without mutating either.
func Merge(base, sampled StyleSet) StyleSet {
	out := base.clone()
	for kind, rule := range sampled {
		out[kind] = rule
	}
	return out
}

func kindForStyleID(id string) docModel.SectionKind {
	switch {
	case strings.Contains(id, "Heading1"), strings.Contains(id, "Title"):
		return docModel.KindHeading1
	case strings.Contains(id, "Heading2"):
		return docModel.KindHeading2
	default:
		return docModel.KindParagraph
	}
}

type refDocument struct {
	XMLName xml.Name       `xml:"document"`
	Paras   []refParagraph `xml:"body>p"`
}

type refParagraph struct {
	Props refParaProps `xml:"pPr"`
	Runs  []refRun     `xml:"r"`
}

type refParaProps struct {
	Style   *valAttr    `xml:"pStyle"`
	Jc      *valAttr    `xml:"jc"`
	Spacing *lineAttr   `xml:"spacing"`
	Run     refRunProps `xml:"rPr"`
}

type refRun struct {
	Props refRunProps `xml:"rPr"`
	Text  []string    `xml:"t"`
}

type refRunProps struct {
	Fonts     *fontsAttr `xml:"rFonts"`
	Size      *valAttr   `xml:"sz"`
	Bold      *valAttr   `xml:"b"`
	Italic    *valAttr   `xml:"i"`
	Underline *valAttr   `xml:"u"`
}

type valAttr struct {
	Val string `xml:"val,attr"`
}

type fontsAttr struct {
	ASCII string `xml:"ascii,attr"`
}

type lineAttr struct {
	Line string `xml:"line,attr"`
}

func (p refParagraph) hasText() bool {
	for _, r := range p.Runs {
		for _, t := range r.Text {
			if strings.TrimSpace(t) != "" {
				return true
			}
		}
	}
	return false
}

func (p refParagraph) styleID() string {
	if p.Props.Style != nil {
		return p.Props.Style.Val
	}
	return ""
}

// rule converts sampled OOXML attributes to a StyleRule, filling gaps from
// the built-in default for the sampled kind. Sizes are stored by Word in
// half-points and line spacing in 240ths of a line.
func (p refParagraph) rule() docModel.StyleRule {
	out := Defaults().Resolve(kindForStyleID(p.styleID()))

	rp := p.Props.Run
	if len(p.Runs) > 0 {
		rp = mergeRunProps(rp, p.Runs[0].Props)
	}

	if rp.Fonts != nil && rp.Fonts.ASCII != "" {
		out.Font = rp.Fonts.ASCII
	}
	if rp.Size != nil {
		if half, err := strconv.ParseFloat(rp.Size.Val, 64); err == nil && half > 0 {
			out.Size = half / 2
		}
	}
	if rp.Bold != nil {
		out.Bold = toggleOn(rp.Bold.Val)
	}
	if rp.Italic != nil {
		out.Italic = toggleOn(rp.Italic.Val)
	}
	if rp.Underline != nil {
		out.Underline = rp.Underline.Val != "none"
	}
	if p.Props.Jc != nil {
		switch p.Props.Jc.Val {
		case "center", "left", "right", "both", "justify":
			out.Align = normalizeAlign(p.Props.Jc.Val)
		}
	}
	if p.Props.Spacing != nil {
		if line, err := strconv.ParseFloat(p.Props.Spacing.Line, 64); err == nil && line > 0 {
			out.Spacing = line / 240
		}
	}
	return out
}

func mergeRunProps(para, run refRunProps) refRunProps {
	out := para
	if run.Fonts != nil {
		out.Fonts = run.Fonts
	}
	if run.Size != nil {
		out.Size = run.Size
	}
	if run.Bold != nil {
		out.Bold = run.Bold
	}
	if run.Italic != nil {
		out.Italic = run.Italic
	}
	if run.Underline != nil {
		out.Underline = run.Underline
	}
	return out
}

func toggleOn(val string) bool {
	return val != "false" && val != "0"
}

func normalizeAlign(jc string) string {
	if jc == "both" {
		return "justify"
	}
	return jc
}
