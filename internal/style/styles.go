package style

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

// StyleSet maps every section kind to the formatting applied at assembly.
// Resolution never fails: unknown kinds fall back to the Paragraph rule.
type StyleSet map[docModel.SectionKind]docModel.StyleRule

// Defaults returns the built-in formatting profile.
func Defaults() StyleSet {
	return StyleSet{
		docModel.KindHeading1: {
			Font: "Calibri Light", Size: 16, Bold: true, Align: "center", Spacing: 1.15,
		},
		docModel.KindHeading2: {
			Font: "Calibri", Size: 14, Bold: true, Align: "left", Spacing: 1.15,
		},
		docModel.KindParagraph: {
			Font: "Times New Roman", Size: 12, Align: "justify", Spacing: 1.15,
		},
		docModel.KindSignature: {
			Font: "Times New Roman", Size: 12, Align: "left", Spacing: 1.5,
		},
	}
}

// Resolve returns the rule for kind, falling back to the Paragraph rule and
// finally the built-in Paragraph default. Assembly always gets a full rule.
func (ss StyleSet) Resolve(kind docModel.SectionKind) docModel.StyleRule {
	if r, ok := ss[kind]; ok {
		return r
	}
	if r, ok := ss[docModel.KindParagraph]; ok {
		return r
	}
	return Defaults()[docModel.KindParagraph]
}

func (ss StyleSet) clone() StyleSet {
	out := make(StyleSet, len(ss))
	for k, v := range ss {
		out[k] = v
	}
	return out
}

// Store hands out the style set for a doc type. Per-type overrides are read
// once at startup from <doc_type>_styles.json files under styleDir.
type Store struct {
	base      StyleSet
	overrides map[docModel.DocType]StyleSet
}

func NewStore(styleDir string) *Store {
	logger := logging.NewLogger("StyleStore")

	st := &Store{
		base:      Defaults(),
		overrides: make(map[docModel.DocType]StyleSet),
	}

	for _, dt := range docModel.SupportedDocTypes() {
		name := strings.ToLower(string(dt)) + "_styles.json"
		raw, err := os.ReadFile(filepath.Join(styleDir, name))
		if err != nil {
			continue
		}
		var rules map[docModel.SectionKind]docModel.StyleRule
		if err := json.Unmarshal(raw, &rules); err != nil {
			logger.Warn("Ignoring malformed style file", "file", name, "error", err)
			continue
		}
		set := st.base.clone()
		for kind, rule := range rules {
			set[kind] = rule
		}
		st.overrides[dt] = set
		logger.Info("Loaded style override", "docType", dt, "rules", len(rules))
	}

	return st
}

// For returns a copy of the style set for a doc type; callers may layer
// reference-document samples on top without affecting the store.
func (st *Store) For(dt docModel.DocType) StyleSet {
	if set, ok := st.overrides[dt]; ok {
		return set.clone()
	}
	return st.base.clone()
}
