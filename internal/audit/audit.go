// Package audit writes a JSON trail for every generation run: the final
// record plus the raw AI payloads that produced it. Audit failures never fail
// a request.
package audit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/config"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

type Auditor struct {
	dir    string
	logger *logging.Logger
}

func New(dir string) *Auditor {
	return &Auditor{
		dir:    dir,
		logger: logging.NewLogger("Audit"),
	}
}

type entry struct {
	Record       docModel.GenerationRecord `json:"record"`
	RawResponses map[string]string         `json:"raw_responses,omitempty"`
	WrittenAt    time.Time                 `json:"written_at"`
}

// Write persists one audit entry named after the record ID. rawResponses maps
// a stage name ("extraction", "generation", ...) to the unmodified model
// output for that stage.
func (a *Auditor) Write(ctx context.Context, rec docModel.GenerationRecord, rawResponses map[string]string) error {
	log := a.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "recordId", rec.ID)

	data, err := json.MarshalIndent(entry{
		Record:       rec,
		RawResponses: rawResponses,
		WrittenAt:    time.Now(),
	}, "", "  ")
	if err != nil {
		log.Error("Marshalling audit entry failed", "error", err)
		return err
	}

	path := filepath.Join(a.dir, rec.ID+"_audit.json")
	if err := os.WriteFile(path, data, 0o640); err != nil {
		log.Error("Writing audit entry failed", "error", err)
		return err
	}
	log.Debug("Audit entry written", "path", path)
	return nil
}
