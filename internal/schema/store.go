package schema

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/pkg/logging"
)

const (
	structureFileName = "doc_structure_schema.json"
	fieldsFileName    = "doc_fields.json"
)

// Store resolves the structure schema and field spec for a doc type. It is
// built once at startup and read-only afterwards.
type Store struct {
	schemas map[docModel.DocType]docModel.Schema
	fields  map[docModel.DocType]docModel.FieldSpec
}

type schemaOverride struct {
	Title    string             `json:"title"`
	Sections []docModel.Section `json:"sections"`
}

// NewStore builds the schema store from the built-in defaults, then merges
// any per-doc-type overrides found in schemaDir. A missing or unreadable
// override file is not an error; the defaults stand.
func NewStore(schemaDir string) *Store {
	logger := logging.NewLogger("SchemaStore")

	s := &Store{
		schemas: defaultSchemas(),
		fields:  defaultFieldSpecs(),
	}

	if raw, err := os.ReadFile(filepath.Join(schemaDir, structureFileName)); err == nil {
		var overrides map[string]schemaOverride
		if err := json.Unmarshal(raw, &overrides); err != nil {
			logger.Warn("Ignoring malformed structure schema file", "file", structureFileName, "error", err)
		} else {
			for key, ov := range overrides {
				dt, ok := docModel.ParseDocType(key)
				if !ok {
					logger.Warn("Skipping schema override for unknown doc type", "docType", key)
					continue
				}
				if len(ov.Sections) == 0 {
					logger.Warn("Skipping schema override without sections", "docType", key)
					continue
				}
				merged := docModel.Schema{DocType: dt, Title: ov.Title, Sections: ov.Sections}
				if merged.Title == "" {
					merged.Title = s.schemas[dt].Title
				}
				s.schemas[dt] = merged
				logger.Info("Loaded structure schema override", "docType", dt, "sections", len(ov.Sections))
			}
		}
	}

	if raw, err := os.ReadFile(filepath.Join(schemaDir, fieldsFileName)); err == nil {
		var overrides map[string]docModel.FieldSpec
		if err := json.Unmarshal(raw, &overrides); err != nil {
			logger.Warn("Ignoring malformed field spec file", "file", fieldsFileName, "error", err)
		} else {
			for key, spec := range overrides {
				dt, ok := docModel.ParseDocType(key)
				if !ok {
					logger.Warn("Skipping field spec override for unknown doc type", "docType", key)
					continue
				}
				s.fields[dt] = spec
			}
		}
	}

	return s
}

func (s *Store) Schema(dt docModel.DocType) (docModel.Schema, bool) {
	sc, ok := s.schemas[dt]
	return sc, ok
}

func (s *Store) Fields(dt docModel.DocType) (docModel.FieldSpec, bool) {
	fs, ok := s.fields[dt]
	return fs, ok
}

// AllFields returns the union of a doc type's required and optional fields in
// spec order. Extraction prompts and metadata completion iterate this.
func (s *Store) AllFields(dt docModel.DocType) []docModel.FieldName {
	spec, ok := s.fields[dt]
	if !ok {
		return nil
	}
	out := make([]docModel.FieldName, 0, len(spec.Required)+len(spec.Optional))
	out = append(out, spec.Required...)
	out = append(out, spec.Optional...)
	return out
}
