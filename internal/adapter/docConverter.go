package adapter

import (
	"net/http"

	"github.com/YasinSaleem/legal-doc-ai/internal/api"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func ToGenerateResponse(doc docModel.GeneratedDocument) api.GenerateDocumentResponse {
	rec := doc.Record

	fields := make(map[string]string, len(rec.ExtractedFields))
	for name, value := range rec.ExtractedFields {
		fields[string(name)] = value
	}

	var missing []string
	for _, f := range rec.MissingFields {
		missing = append(missing, string(f))
	}

	return api.GenerateDocumentResponse{
		Success:     true,
		DownloadURL: "/downloads/" + doc.FileName,
		Metadata: api.GenerationMetadata{
			ID:                rec.ID,
			FileName:          rec.FileName,
			DocType:           string(rec.DocType),
			Language:          string(rec.Language),
			LanguageName:      rec.LanguageName,
			ExtractedFields:   fields,
			MissingFields:     missing,
			SectionsGenerated: rec.SectionsGenerated,
			ProcessingTimeMs:  rec.ProcessingTimeMs,
			TemplateUsed:      rec.TemplateUsed,
			TranslationStatus: rec.TranslationStatus,
			ValidationPassed:  rec.Validation.Passed,
			RepairAttempts:    rec.Validation.RepairAttempts,
			Warnings:          rec.Warnings,
			GeneratedAt:       rec.CreatedAt,
		},
	}
}

// ToErrorResponse maps the error taxonomy onto HTTP status codes. Anything
// outside the known kinds is an internal error.
func ToErrorResponse(err error) (int, api.ErrorResponse) {
	kind := docModel.ErrorKind(err)

	status := http.StatusInternalServerError
	switch kind {
	case "RequestError":
		status = http.StatusBadRequest
	case "NotFoundError":
		status = http.StatusNotFound
	}

	return status, api.ErrorResponse{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: kind,
	}
}

func ToListRecordsResponse(records []docModel.GenerationRecord) api.ListRecordsResponse {
	return api.ListRecordsResponse{
		Success: true,
		Count:   len(records),
		Records: records,
	}
}

func ToConfigResponse() api.ConfigResponse {
	docTypes := docModel.SupportedDocTypes()
	types := make([]string, 0, len(docTypes))
	for _, dt := range docTypes {
		types = append(types, string(dt))
	}

	langs := make(map[string]string)
	for code, name := range docModel.SupportedLanguages() {
		langs[string(code)] = name
	}

	return api.ConfigResponse{
		DocTypes:        types,
		Languages:       langs,
		DefaultLanguage: string(docModel.LanguageEnglish),
	}
}

func ToFieldsResponse(docType docModel.DocType, spec docModel.FieldSpec) api.FieldsResponse {
	required := make([]string, 0, len(spec.Required))
	for _, f := range spec.Required {
		required = append(required, string(f))
	}
	optional := make([]string, 0, len(spec.Optional))
	for _, f := range spec.Optional {
		optional = append(optional, string(f))
	}
	return api.FieldsResponse{
		DocType:  string(docType),
		Required: required,
		Optional: optional,
	}
}
