// Package pipeline is the document generation core: extraction, content
// generation, validation/repair and assembly, chained per request. Every
// stage before assembly degrades to a deterministic fallback, so the pipeline
// terminates with a document whenever assembly itself can write one.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/YasinSaleem/legal-doc-ai/internal/assemble"
	"github.com/YasinSaleem/legal-doc-ai/internal/audit"
	"github.com/YasinSaleem/legal-doc-ai/internal/cache"
	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/embedding"
	"github.com/YasinSaleem/legal-doc-ai/internal/llm"
	"github.com/YasinSaleem/legal-doc-ai/internal/metrics"
	"github.com/YasinSaleem/legal-doc-ai/internal/schema"
	"github.com/YasinSaleem/legal-doc-ai/internal/store"
	"github.com/YasinSaleem/legal-doc-ai/internal/style"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

// Request is one validated generation request. DocType and Language are
// already parsed; Scenario is trimmed and length-checked.
type Request struct {
	DocType          docModel.DocType
	Language         docModel.Language
	Scenario         string
	Template         []byte
	TemplateFilename string
}

type Service interface {
	Generate(ctx context.Context, req Request) (docModel.GeneratedDocument, error)
}

// ServiceConfig wires the pipeline's collaborators. Provider, Embedder, Cache
// and Auditor may be nil: a nil provider forces every stage onto its
// deterministic fallback, nil embedder/cache disable the semantic cache, nil
// auditor disables the audit trail.
type ServiceConfig struct {
	Provider       llm.Provider
	Embedder       embedding.Embedder
	Cache          cache.ContentCache
	Schemas        *schema.Store
	Styles         *style.Store
	Artifacts      store.ArtifactStore
	Records        store.RecordStore
	Auditor        *audit.Auditor
	RepairAttempts int
	CallTimeout    time.Duration
}

type service struct {
	provider          llm.Provider
	embedder          embedding.Embedder
	cache             cache.ContentCache
	schemas           *schema.Store
	styles            *style.Store
	artifacts         store.ArtifactStore
	records           store.RecordStore
	auditor           *audit.Auditor
	maxRepairAttempts int
	callTimeout       time.Duration
	logger            *logging.Logger
}

func InitService(cfg ServiceConfig) Service {
	if cfg.RepairAttempts <= 0 {
		cfg.RepairAttempts = config.DefaultRepairAttempts
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = config.AICallTimeout
	}
	return &service{
		provider:          cfg.Provider,
		embedder:          cfg.Embedder,
		cache:             cfg.Cache,
		schemas:           cfg.Schemas,
		styles:            cfg.Styles,
		artifacts:         cfg.Artifacts,
		records:           cfg.Records,
		auditor:           cfg.Auditor,
		maxRepairAttempts: cfg.RepairAttempts,
		callTimeout:       cfg.CallTimeout,
		logger:            logging.NewLogger("Pipeline"),
	}
}

func (s *service) Generate(ctx context.Context, req Request) (docModel.GeneratedDocument, error) {
	start := time.Now()
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "docType", req.DocType)
	var zero docModel.GeneratedDocument

	sch, ok := s.schemas.Schema(req.DocType)
	if !ok {
		return zero, fmt.Errorf("%w: unsupported doc type %q", docModel.ErrRequest, req.DocType)
	}

	id := uuid.New().String()[:8]
	var warnings []string
	rawResponses := map[string]string{}

	meta, rawExtract, err := s.extract(ctx, req.Scenario, req.DocType)
	if rawExtract != "" {
		rawResponses["extraction"] = rawExtract
	}
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	styles := s.styles.For(req.DocType)
	templateUsed := false
	if len(req.Template) > 0 {
		sampled, sampleErr := style.SampleReference(req.Template)
		if sampleErr != nil {
			log.Warn("Style reference unusable, keeping static styles", "file", req.TemplateFilename, "error", sampleErr)
			warnings = append(warnings, "style reference ignored: "+sampleErr.Error())
		} else {
			styles = style.Merge(styles, sampled)
			templateUsed = true
		}
	}

	content, rawGen, err := s.contentFor(ctx, req, meta, sch)
	if rawGen != "" {
		rawResponses["generation"] = rawGen
	}
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	content, report, err := s.validate(ctx, content, meta)
	if err != nil {
		warnings = append(warnings, err.Error())
	}

	content, translationStatus := s.translate(ctx, content, req.Language)

	partyName, _ := meta.Get(docModel.FieldPartyName)
	fileName := assemble.FileName(partyName, req.DocType, req.Language, id)

	data, err := assemble.Assemble(content, req.DocType, styles)
	if err != nil {
		metrics.IncrementDocumentsGenerated(string(req.DocType), "error")
		metrics.CapturePipelineMetrics("error", time.Since(start))
		return zero, err
	}
	if err := s.artifacts.Save(ctx, fileName, data); err != nil {
		metrics.IncrementDocumentsGenerated(string(req.DocType), "error")
		metrics.CapturePipelineMetrics("error", time.Since(start))
		return zero, fmt.Errorf("%w: storing artifact: %v", docModel.ErrAssembly, err)
	}

	rec := docModel.GenerationRecord{
		ID:                id,
		FileName:          fileName,
		DocType:           req.DocType,
		Language:          req.Language,
		LanguageName:      req.Language.Name(),
		ExtractedFields:   meta.Fields,
		MissingFields:     meta.Missing,
		SectionsGenerated: len(content.Sections),
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
		TemplateUsed:      templateUsed,
		TemplateFilename:  req.TemplateFilename,
		TranslationStatus: translationStatus,
		Scenario:          req.Scenario,
		CreatedAt:         time.Now(),
		Validation:        report,
		Warnings:          warnings,
	}

	if err := s.records.SaveRecord(ctx, rec); err != nil {
		log.Error("Saving generation record failed", "error", err)
	}
	if s.auditor != nil {
		if err := s.auditor.Write(ctx, rec, rawResponses); err != nil {
			log.Error("Writing audit entry failed", "error", err)
		}
	}

	metrics.IncrementDocumentsGenerated(string(req.DocType), "success")
	metrics.CapturePipelineMetrics("success", time.Since(start))
	log.Info("Document generated", "fileName", fileName, "sections", rec.SectionsGenerated,
		"ms", rec.ProcessingTimeMs, "warnings", len(warnings))

	return docModel.GeneratedDocument{FileName: fileName, Data: data, Record: rec}, nil
}

// contentFor serves content from the semantic cache when a close-enough
// scenario of the same doc type was generated before, otherwise runs the
// generator and caches its output. Cache and embedder are optional; any
// failure on this path falls through to plain generation.
func (s *service) contentFor(ctx context.Context, req Request, meta docModel.Metadata, sch docModel.Schema) (docModel.GeneratedContent, string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	if s.cache == nil || s.embedder == nil {
		return s.generate(ctx, req.Scenario, meta, sch)
	}

	vec, err := s.embedder.GetEmbedding(ctx, req.Scenario)
	if err != nil {
		log.Warn("Embedding failed, skipping content cache", "error", err)
		return s.generate(ctx, req.Scenario, meta, sch)
	}

	if cached, hit, _ := s.cache.GetCachedContent(ctx, req.DocType, vec); hit {
		metrics.IncrementCacheLookup("hit")
		// Reconciling keeps the schema-shape invariant even for cached
		// content generated under an older schema.
		return reconcile(cached, sch, meta), "", nil
	}
	metrics.IncrementCacheLookup("miss")

	content, raw, genErr := s.generate(ctx, req.Scenario, meta, sch)
	if genErr == nil {
		if saveErr := s.cache.SaveContent(ctx, uuid.New().String(), req.DocType, vec, content); saveErr != nil {
			log.Warn("Caching generated content failed", "error", saveErr)
		}
	}
	return content, raw, genErr
}

// complete is the single door to the AI provider: bounded timeout, latency
// metrics per stage, nil provider reported as an error for the caller's
// fallback.
func (s *service) complete(ctx context.Context, prompt string, stage string) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no AI provider configured")
	}
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	start := time.Now()
	out, err := s.provider.Complete(callCtx, prompt)
	metrics.CaptureExecutionMetrics(stage, time.Since(start))
	return out, err
}
