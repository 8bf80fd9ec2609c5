package assemble

import (
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/docx"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// signatureRenderer writes one signature block. NDA is the only single-party
// document; every other type puts the two parties side by side.
type signatureRenderer func(w *docx.Writer, text string, rule docModel.StyleRule)

var signatureRenderers = map[docModel.DocType]signatureRenderer{
	docModel.DocTypeNDA: renderStackedSignature,
}

func renderSignature(w *docx.Writer, dt docModel.DocType, text string, rule docModel.StyleRule) {
	if r, ok := signatureRenderers[dt]; ok {
		r(w, text, rule)
		return
	}
	renderTwoPartySignature(w, text, rule)
}

func renderStackedSignature(w *docx.Writer, text string, rule docModel.StyleRule) {
	w.AddParagraph(text, "", rule)
}

// renderTwoPartySignature splits the block at the receiving party's line and
// lays the halves out in a borderless two-column table. Blocks that don't
// mention a receiving party degrade to the stacked form.
func renderTwoPartySignature(w *docx.Writer, text string, rule docModel.StyleRule) {
	left, right, ok := splitParties(text)
	if !ok {
		renderStackedSignature(w, text, rule)
		return
	}
	w.AddTwoColumnTable(left, right, rule)
}

func splitParties(text string) (left, right []string, ok bool) {
	lines := strings.Split(text, "\n")
	split := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "Receiving Party") {
			split = i
			break
		}
	}
	if split <= 0 {
		return nil, nil, false
	}
	return trimBlank(lines[:split]), trimBlank(lines[split:]), true
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
