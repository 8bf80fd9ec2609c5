package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
	"github.com/YasinSaleem/legal-doc-ai/internal/metrics"
)

func buildGenerationPrompt(scenario string, meta docModel.Metadata, sch docModel.Schema) string {
	var b strings.Builder
	b.WriteString("Write the full text of a " + string(sch.DocType) + " legal document.\n")
	b.WriteString("Respond with ONLY a JSON object of the form ")
	b.WriteString(`{"title": "...", "sections": [{"type": "...", "content": "..."}]}` + ".\n")
	b.WriteString("Produce exactly one section per template entry, in order, keeping each \"type\" value unchanged.\n")
	b.WriteString("Replace every [Placeholder] with concrete text. Do not invent extra sections.\n\n")

	b.WriteString("Known details:\n")
	for name, value := range meta.Fields {
		if value != docModel.ValueMissing {
			b.WriteString("- " + string(name) + ": " + value + "\n")
		}
	}

	b.WriteString("\nTemplate sections:\n")
	for i, sec := range sch.Sections {
		fmt.Fprintf(&b, "%d. type=%q template=%q\n", i+1, sec.Kind, sec.Text)
	}

	b.WriteString("\nScenario:\n" + scenario + "\n")
	return b.String()
}

// generate produces the document content in one bulk model call, reconciled
// against the schema. If the model is unavailable or its output is
// structurally useless, the deterministic template fallback takes over; the
// pipeline always gets schema-shaped content back.
func (s *service) generate(ctx context.Context, scenario string, meta docModel.Metadata, sch docModel.Schema) (docModel.GeneratedContent, string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	raw, err := s.complete(ctx, buildGenerationPrompt(scenario, meta, sch), "generation")
	if err != nil {
		log.Warn("Generation call failed, using template fallback", "error", err)
		metrics.IncrementFallback("generation")
		return fallbackContent(sch, meta), "", fmt.Errorf("%w: %v", docModel.ErrGeneration, err)
	}

	var parsed docModel.GeneratedContent
	if err := llm.DecodeJSON(raw, &parsed); err != nil {
		log.Warn("Generation response unparseable, using template fallback", "error", err, "rawResponse", raw)
		metrics.IncrementFallback("generation")
		return fallbackContent(sch, meta), raw, fmt.Errorf("%w: response never parsed: %v", docModel.ErrGeneration, err)
	}

	content := reconcile(parsed, sch, meta)
	log.Debug("Generation complete", "sections", len(content.Sections))
	return content, raw, nil
}

// reconcile forces model output into the schema's shape: extra sections are
// truncated, missing or empty ones synthesized from template text, and every
// kind overwritten with the schema's kind for that slot.
func reconcile(parsed docModel.GeneratedContent, sch docModel.Schema, meta docModel.Metadata) docModel.GeneratedContent {
	out := docModel.GeneratedContent{
		Title:    strings.TrimSpace(parsed.Title),
		Sections: make([]docModel.GeneratedSection, len(sch.Sections)),
	}
	if out.Title == "" {
		out.Title = sch.Title
	}

	for i, slot := range sch.Sections {
		text := ""
		if i < len(parsed.Sections) {
			text = strings.TrimSpace(parsed.Sections[i].Text)
		}
		if text == "" {
			text = interpolate(slot.Text, meta)
		}
		out.Sections[i] = docModel.GeneratedSection{Kind: slot.Kind, Text: text}
	}
	return out
}

// fallbackContent renders the document purely from template text with
// metadata interpolated. Unresolvable fields keep their tokens here; the
// validation loop substitutes them before assembly.
func fallbackContent(sch docModel.Schema, meta docModel.Metadata) docModel.GeneratedContent {
	out := docModel.GeneratedContent{
		Title:    sch.Title,
		Sections: make([]docModel.GeneratedSection, len(sch.Sections)),
	}
	for i, slot := range sch.Sections {
		out.Sections[i] = docModel.GeneratedSection{
			Kind: slot.Kind,
			Text: interpolate(slot.Text, meta),
		}
	}
	return out
}
