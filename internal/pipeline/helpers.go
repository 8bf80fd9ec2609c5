package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

// placeholderPattern matches uninstantiated [Token] slots in template or
// generated text.
var placeholderPattern = regexp.MustCompile(`\[([^\]]+)\]`)

func findPlaceholders(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// scanContent finds every leftover placeholder. The title is reported with
// section index -1.
func scanContent(content docModel.GeneratedContent) []docModel.PlaceholderHit {
	var hits []docModel.PlaceholderHit
	for _, tok := range findPlaceholders(content.Title) {
		hits = append(hits, docModel.PlaceholderHit{SectionIndex: -1, Token: tok})
	}
	for i, sec := range content.Sections {
		for _, tok := range findPlaceholders(sec.Text) {
			hits = append(hits, docModel.PlaceholderHit{SectionIndex: i, Token: tok})
		}
	}
	return hits
}

// interpolate fills [Field] slots with metadata values. Fields the metadata
// can't supply keep their token; the validation loop deals with those.
func interpolate(text string, meta docModel.Metadata) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		name := docModel.FieldName(strings.Trim(token, "[]"))
		if v, ok := meta.Get(name); ok {
			return v
		}
		return token
	})
}

// forceSubstitute removes every remaining bracket token, replacing it with a
// blank line a human can fill in. This is the terminal fallback: no artifact
// ever ships with a raw [Token].
func forceSubstitute(text string) string {
	return placeholderPattern.ReplaceAllString(text, "_________")
}

// fieldDefault supplies the deterministic value used when extraction could
// not resolve a field that templates still need.
func fieldDefault(name docModel.FieldName, now time.Time) (string, bool) {
	switch name {
	case docModel.FieldDate:
		return now.Format("January 2, 2006"), true
	case docModel.FieldStartDate:
		return now.Format("January 2, 2006"), true
	case docModel.FieldTerm:
		return "2 years", true
	case docModel.FieldJurisdiction:
		return "United States", true
	default:
		return "", false
	}
}

// completeMetadata guarantees every field of the spec has an entry: extracted
// values win, defaultable fields get their deterministic value, the rest stay
// at the missing sentinel and are flagged.
func completeMetadata(extracted map[docModel.FieldName]string, fields []docModel.FieldName, now time.Time) docModel.Metadata {
	meta := docModel.Metadata{Fields: make(map[docModel.FieldName]string, len(fields))}
	for _, name := range fields {
		if v, ok := extracted[name]; ok && strings.TrimSpace(v) != "" {
			meta.Fields[name] = strings.TrimSpace(v)
			continue
		}
		if v, ok := fieldDefault(name, now); ok {
			meta.Fields[name] = v
			meta.Missing = append(meta.Missing, name)
			continue
		}
		meta.Fields[name] = docModel.ValueMissing
		meta.Missing = append(meta.Missing, name)
	}
	return meta
}
