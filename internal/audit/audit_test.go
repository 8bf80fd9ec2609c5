package audit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func TestAuditor_Write(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)

	rec := docModel.GenerationRecord{
		ID:        "rec_audit_1",
		FileName:  "Alice_NDA_EN_x.docx",
		DocType:   docModel.DocTypeNDA,
		CreatedAt: time.Now(),
	}
	raw := map[string]string{"extraction": `{"Name":"Alice"}`}

	if err := a.Write(context.Background(), rec, raw); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "rec_audit_1_audit.json"))
	if err != nil {
		t.Fatal(err)
	}

	var got entry
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Record.ID != rec.ID {
		t.Errorf("record id = %q", got.Record.ID)
	}
	if got.RawResponses["extraction"] == "" {
		t.Error("raw extraction payload missing from audit entry")
	}
	if got.WrittenAt.IsZero() {
		t.Error("written_at not set")
	}
}

func TestAuditor_WriteBadDir(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "does", "not", "exist"))
	rec := docModel.GenerationRecord{ID: "rec_x"}
	if err := a.Write(context.Background(), rec, nil); err == nil {
		t.Error("expected an error for an unwritable directory")
	}
}
