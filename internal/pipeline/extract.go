package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
)

const extractionRetryHint = "Your previous reply was not valid JSON. Reply with ONLY a single flat JSON object, no prose, no code fences."

func buildExtractionPrompt(scenario string, fields []docModel.FieldName, strict bool) string {
	var b strings.Builder
	b.WriteString("Extract the following fields from the scenario below.\n")
	b.WriteString("Respond with a single flat JSON object whose keys are exactly the field names. ")
	b.WriteString("Use an empty string for any field the scenario does not mention.\n\nFields:\n")
	for _, f := range fields {
		b.WriteString("- " + string(f) + "\n")
	}
	b.WriteString("\nScenario:\n" + scenario + "\n")
	if strict {
		b.WriteString("\n" + extractionRetryHint + "\n")
	}
	return b.String()
}

// extract pulls the doc type's field spec out of the scenario text. It never
// fails the request: a dead model or unparseable output yields a metadata set
// built from deterministic defaults, with the gap flagged and an
// ExtractionError reported for the record's warnings.
func (s *service) extract(ctx context.Context, scenario string, dt docModel.DocType) (docModel.Metadata, string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))
	fields := s.schemas.AllFields(dt)
	now := time.Now()

	raw, err := s.complete(ctx, buildExtractionPrompt(scenario, fields, false), "extraction")
	if err != nil {
		log.Warn("Extraction call failed, using defaults", "error", err)
		return completeMetadata(nil, fields, now), "", fmt.Errorf("%w: %v", docModel.ErrExtraction, err)
	}

	parsed, parseErr := decodeFieldMap(raw)
	if parseErr != nil {
		log.Warn("Extraction response unparseable, retrying strict", "error", parseErr)
		retryRaw, retryErr := s.complete(ctx, buildExtractionPrompt(scenario, fields, true), "extraction")
		if retryErr == nil {
			raw = retryRaw
			parsed, parseErr = decodeFieldMap(retryRaw)
		}
	}
	if parseErr != nil {
		log.Warn("Extraction failed after retry, using defaults", "error", parseErr, "rawResponse", raw)
		return completeMetadata(nil, fields, now), raw,
			fmt.Errorf("%w: response never parsed: %v", docModel.ErrExtraction, parseErr)
	}

	meta := completeMetadata(parsed, fields, now)
	log.Debug("Extraction complete", "missing", meta.Missing)
	return meta, raw, nil
}

func decodeFieldMap(raw string) (map[docModel.FieldName]string, error) {
	var m map[docModel.FieldName]string
	if err := llm.DecodeJSON(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
