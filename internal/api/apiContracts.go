package api

import (
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

type GenerateDocumentResponse struct {
	Success     bool               `json:"success" example:"true"`
	DownloadURL string             `json:"download_url" example:"/downloads/Alice_Johnson_NDA_EN_a1b2c3d4.docx"`
	Metadata    GenerationMetadata `json:"metadata"`
}

type GenerationMetadata struct {
	ID                string            `json:"id" example:"a1b2c3d4"`
	FileName          string            `json:"filename"`
	DocType           string            `json:"doc_type" example:"NDA"`
	Language          string            `json:"language_code" example:"en"`
	LanguageName      string            `json:"language" example:"English"`
	ExtractedFields   map[string]string `json:"extracted_fields"`
	MissingFields     []string          `json:"missing_fields_filled,omitempty"`
	SectionsGenerated int               `json:"sections_generated" example:"10"`
	ProcessingTimeMs  int64             `json:"processing_time_ms" example:"4200"`
	TemplateUsed      bool              `json:"template_used"`
	TranslationStatus string            `json:"translation_status" example:"not_required"`
	ValidationPassed  bool              `json:"validation_passed"`
	RepairAttempts    int               `json:"repair_attempts"`
	Warnings          []string          `json:"warnings,omitempty"`
	GeneratedAt       time.Time         `json:"generation_timestamp"`
}

type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"scenario must be at least 10 characters"`
	ErrorKind string `json:"error_kind" example:"RequestError"`
}

type ConfigResponse struct {
	DocTypes        []string          `json:"supported_document_types"`
	Languages       map[string]string `json:"supported_languages"`
	DefaultLanguage string            `json:"default_language" example:"en"`
}

type FieldsResponse struct {
	DocType  string   `json:"doc_type" example:"NDA"`
	Required []string `json:"required_fields"`
	Optional []string `json:"optional_fields"`
}

type ListRecordsResponse struct {
	Success bool                        `json:"success" example:"true"`
	Count   int                         `json:"count" example:"3"`
	Records []docModel.GenerationRecord `json:"records"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"legal-doc-ai"`
}
