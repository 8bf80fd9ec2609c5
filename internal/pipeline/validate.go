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

func buildRepairPrompt(sectionText string, tokens []string, meta docModel.Metadata) string {
	var b strings.Builder
	b.WriteString("The following legal document section still contains unfilled placeholder tokens: ")
	b.WriteString(strings.Join(tokens, ", "))
	b.WriteString(".\nRewrite the section with every placeholder replaced by concrete text. ")
	b.WriteString("Keep everything else unchanged. Respond with ONLY the rewritten section text.\n\n")

	b.WriteString("Known details:\n")
	for name, value := range meta.Fields {
		if value != docModel.ValueMissing {
			b.WriteString("- " + string(name) + ": " + value + "\n")
		}
	}
	b.WriteString("\nSection:\n" + sectionText + "\n")
	return b.String()
}

// validate runs the scan/repair loop: scan for leftover placeholders, ask the
// model to repair offending sections, re-scan, at most maxAttempts repair
// rounds. When the budget runs out every remaining token is force-substituted
// so no raw bracket survives. The returned report is observability output; the
// error (ErrValidationExhausted) marks forced runs and is never fatal.
func (s *service) validate(ctx context.Context, content docModel.GeneratedContent, meta docModel.Metadata) (docModel.GeneratedContent, docModel.ValidationReport, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	report := docModel.ValidationReport{}

	hits := scanContent(content)
	for attempt := 0; attempt < s.maxRepairAttempts && len(hits) > 0; attempt++ {
		report.RepairAttempts++
		log.Debug("Repair round", "attempt", attempt+1, "hits", len(hits))
		content = s.repair(ctx, content, hits, meta)
		hits = scanContent(content)
	}

	if len(hits) == 0 {
		report.Passed = true
		return content, report, nil
	}

	// Budget exhausted; substitute deterministically and record which
	// sections were forced.
	report.Hits = hits
	forced := map[int]bool{}
	for _, hit := range hits {
		if forced[hit.SectionIndex] {
			continue
		}
		forced[hit.SectionIndex] = true
		if hit.SectionIndex == -1 {
			content.Title = forceSubstitute(content.Title)
		} else {
			content.Sections[hit.SectionIndex].Text = forceSubstitute(content.Sections[hit.SectionIndex].Text)
		}
		report.ForcedSections = append(report.ForcedSections, hit.SectionIndex)
	}

	log.Warn("Repair budget exhausted, placeholders force-substituted",
		"attempts", report.RepairAttempts, "forcedSections", report.ForcedSections)
	metrics.IncrementFallback("validation")
	return content, report, fmt.Errorf("%w: %d placeholders after %d attempts",
		docModel.ErrValidationExhausted, len(hits), report.RepairAttempts)
}

// repair asks the model for a corrected version of each offending section.
// A failed or empty repair leaves the section as-is for the next scan.
func (s *service) repair(ctx context.Context, content docModel.GeneratedContent, hits []docModel.PlaceholderHit, meta docModel.Metadata) docModel.GeneratedContent {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	tokensBySection := map[int][]string{}
	for _, hit := range hits {
		tokensBySection[hit.SectionIndex] = append(tokensBySection[hit.SectionIndex], hit.Token)
	}

	for idx, tokens := range tokensBySection {
		text := content.Title
		if idx >= 0 {
			text = content.Sections[idx].Text
		}

		metrics.IncrementRepairAttempts()
		fixed, err := s.complete(ctx, buildRepairPrompt(text, tokens, meta), "repair")
		if err != nil {
			log.Warn("Repair call failed", "sectionIndex", idx, "error", err)
			continue
		}
		fixed = llm.CleanText(fixed)
		if fixed == "" {
			continue
		}
		if idx == -1 {
			content.Title = fixed
		} else {
			content.Sections[idx].Text = fixed
		}
	}
	return content
}
