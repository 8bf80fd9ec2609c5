// Package assemble turns validated generated content into the final .docx
// artifact. This is the only pipeline stage without a fallback: an error here
// fails the request.
package assemble

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/docx"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/style"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

var logger = logging.NewLogger("Assembler")

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Assemble renders content into a .docx using the given style set. Section
// styles resolve through the set, so every kind always gets a full rule.
func Assemble(content docModel.GeneratedContent, dt docModel.DocType, styles style.StyleSet) ([]byte, error) {
	if len(content.Sections) == 0 {
		return nil, fmt.Errorf("%w: no sections to assemble", docModel.ErrAssembly)
	}

	w := docx.NewWriter()
	w.AddParagraph(content.Title, "Heading1", styles.Resolve(docModel.KindHeading1))

	for _, sec := range content.Sections {
		rule := styles.Resolve(sec.Kind)
		switch sec.Kind {
		case docModel.KindHeading1:
			w.AddParagraph(sec.Text, "Heading1", rule)
		case docModel.KindHeading2:
			w.AddParagraph(sec.Text, "Heading2", rule)
		case docModel.KindSignature:
			renderSignature(w, dt, sec.Text, rule)
		default:
			w.AddParagraph(sec.Text, "", rule)
		}
	}

	data, err := w.Save()
	if err != nil {
		logger.Error("Serializing document failed", "docType", dt, "error", err)
		return nil, fmt.Errorf("%w: %v", docModel.ErrAssembly, err)
	}
	return data, nil
}

// FileName builds the artifact name <Party>_<DocType>_<LANG>_<id>.docx from
// the extracted party name. Anything outside [A-Za-z0-9] collapses to an
// underscore; a missing name becomes "Document". id is expected to be a short
// unique suffix.
func FileName(partyName string, dt docModel.DocType, lang docModel.Language, id string) string {
	safe := strings.Trim(unsafeFileChars.ReplaceAllString(partyName, "_"), "_")
	if safe == "" {
		safe = "Document"
	}
	return fmt.Sprintf("%s_%s_%s_%s.docx", safe, dt, strings.ToUpper(string(lang)), id)
}
