package pipeline

import (
	"context"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
)

// Translation outcomes recorded in the generation metadata.
const (
	TranslationNotRequired = "not_required"
	TranslationCompleted   = "completed"
	TranslationPartial     = "partial"
	TranslationFailed      = "failed"
)

func buildTranslationPrompt(text string, lang docModel.Language) string {
	return "Translate the following legal document text to " + lang.Name() +
		". Preserve formatting, line breaks and underscores exactly. " +
		"Respond with ONLY the translated text.\n\n" + text
}

// translate renders the validated content in the requested language, one
// model call per text block. Any block that fails keeps its English text; the
// returned status distinguishes full, partial and failed translation. Never
// fatal.
func (s *service) translate(ctx context.Context, content docModel.GeneratedContent, lang docModel.Language) (docModel.GeneratedContent, string) {
	if lang == docModel.LanguageEnglish {
		return content, TranslationNotRequired
	}
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "language", lang)

	total, failed := 0, 0
	translateBlock := func(text string) string {
		total++
		out, err := s.complete(ctx, buildTranslationPrompt(text, lang), "translation")
		if err != nil {
			failed++
			return text
		}
		out = llm.CleanText(out)
		if out == "" {
			failed++
			return text
		}
		return out
	}

	content.Title = translateBlock(content.Title)
	for i := range content.Sections {
		content.Sections[i].Text = translateBlock(content.Sections[i].Text)
	}

	switch {
	case failed == 0:
		log.Debug("Translation complete", "blocks", total)
		return content, TranslationCompleted
	case failed == total:
		log.Warn("Translation failed entirely, keeping English text")
		return content, TranslationFailed
	default:
		log.Warn("Translation partially failed", "failed", failed, "blocks", total)
		return content, TranslationPartial
	}
}
