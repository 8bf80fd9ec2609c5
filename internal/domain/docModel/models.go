package docModel

import (
	"time"
)

type DocType string

const (
	DocTypeNDA         DocType = "NDA"
	DocTypeOfferLetter DocType = "Offer_Letter"
	DocTypeContract    DocType = "Contract"
	DocTypeMOU         DocType = "MOU"
	DocTypeIPAgreement DocType = "IP_Agreement"
)

// SupportedDocTypes is ordered; config endpoints list it as-is.
func SupportedDocTypes() []DocType {
	return []DocType{DocTypeNDA, DocTypeOfferLetter, DocTypeContract, DocTypeMOU, DocTypeIPAgreement}
}

func ParseDocType(s string) (DocType, bool) {
	for _, dt := range SupportedDocTypes() {
		if string(dt) == s {
			return dt, true
		}
	}
	return "", false
}

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
	LanguageGerman  Language = "de"
	LanguageItalian Language = "it"
	LanguagePortug  Language = "pt"
	LanguageRussian Language = "ru"
	LanguageJapan   Language = "ja"
	LanguageKorean  Language = "ko"
	LanguageArabic  Language = "ar"
	LanguageChinese Language = "zh"
)

var languageNames = map[Language]string{
	LanguageEnglish: "English",
	LanguageHindi:   "Hindi",
	LanguageSpanish: "Spanish",
	LanguageFrench:  "French",
	LanguageGerman:  "German",
	LanguageItalian: "Italian",
	LanguagePortug:  "Portuguese",
	LanguageRussian: "Russian",
	LanguageJapan:   "Japanese",
	LanguageKorean:  "Korean",
	LanguageArabic:  "Arabic",
	LanguageChinese: "Chinese",
}

func SupportedLanguages() map[Language]string {
	out := make(map[Language]string, len(languageNames))
	for k, v := range languageNames {
		out[k] = v
	}
	return out
}

func ParseLanguage(s string) (Language, bool) {
	if s == "" {
		return LanguageEnglish, true
	}
	lang := Language(s)
	_, ok := languageNames[lang]
	return lang, ok
}

func (l Language) Name() string {
	return languageNames[l]
}

type SectionKind string

const (
	KindHeading1  SectionKind = "Heading 1"
	KindHeading2  SectionKind = "Heading 2"
	KindParagraph SectionKind = "Paragraph"
	KindSignature SectionKind = "Signature"
)

// Section is one slot of a doc type's structure schema. Text is the template
// text with [Placeholder] tokens.
type Section struct {
	Kind SectionKind `json:"type"`
	Text string      `json:"text"`
}

// Schema is the static ordered structure of a doc type. Exactly one schema
// exists per supported doc type; it never changes at runtime.
type Schema struct {
	DocType  DocType   `json:"doc_type"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

type FieldName string

const (
	FieldPartyName    FieldName = "Name"
	FieldCompany      FieldName = "Company"
	FieldDate         FieldName = "Date"
	FieldTerm         FieldName = "Term"
	FieldJurisdiction FieldName = "Jurisdiction"
	FieldPosition     FieldName = "Position"
	FieldSalary       FieldName = "Salary"
	FieldStartDate    FieldName = "Start_Date"
	FieldPurpose      FieldName = "Purpose"
)

// FieldSpec lists which metadata fields a doc type needs.
type FieldSpec struct {
	Required []FieldName `json:"required_fields"`
	Optional []FieldName `json:"optional_fields"`
}

// ValueMissing is the sentinel stored for a field the extractor could not
// resolve. Every field of the spec is always present in Metadata.Fields so
// callers never do absent-key checks.
const ValueMissing = ""

// Metadata is what the extractor pulled out of the scenario text.
type Metadata struct {
	Fields  map[FieldName]string `json:"fields"`
	Missing []FieldName          `json:"missing,omitempty"`
}

func (m Metadata) Get(f FieldName) (string, bool) {
	v, ok := m.Fields[f]
	if !ok || v == ValueMissing {
		return "", false
	}
	return v, true
}

// GeneratedSection mirrors one schema slot with actual content.
type GeneratedSection struct {
	Kind SectionKind `json:"type"`
	Text string      `json:"content"`
}

// GeneratedContent must match the schema's section count and kinds exactly
// before it may be assembled.
type GeneratedContent struct {
	Title    string             `json:"title"`
	Sections []GeneratedSection `json:"sections"`
}

// PlaceholderHit is one uninstantiated [Token] found during validation.
type PlaceholderHit struct {
	SectionIndex int    `json:"section_index"` // -1 for the title
	Token        string `json:"token"`
}

// ValidationReport is observability output only; it never blocks assembly.
type ValidationReport struct {
	Passed         bool             `json:"passed"`
	Hits           []PlaceholderHit `json:"hits,omitempty"`
	RepairAttempts int              `json:"repair_attempts"`
	ForcedSections []int            `json:"forced_sections,omitempty"`
}

// StyleRule holds the formatting attributes applied to a section kind.
type StyleRule struct {
	Font      string  `json:"font"`
	Size      float64 `json:"size"`
	Bold      bool    `json:"bold"`
	Italic    bool    `json:"italic"`
	Underline bool    `json:"underline"`
	Align     string  `json:"align"`
	Spacing   float64 `json:"spacing"`
}

// GenerationRecord is the durable metadata persisted alongside an artifact.
type GenerationRecord struct {
	ID                string               `json:"id"`
	FileName          string               `json:"final_filename"`
	DocType           DocType              `json:"doc_type"`
	Language          Language             `json:"language_code"`
	LanguageName      string               `json:"language"`
	ExtractedFields   map[FieldName]string `json:"extracted_fields"`
	MissingFields     []FieldName          `json:"missing_fields_filled,omitempty"`
	SectionsGenerated int                  `json:"sections_generated"`
	ProcessingTimeMs  int64                `json:"processing_time_ms"`
	TemplateUsed      bool                 `json:"template_used"`
	TemplateFilename  string               `json:"template_filename,omitempty"`
	TranslationStatus string               `json:"translation_status"`
	Scenario          string               `json:"scenario"`
	CreatedAt         time.Time            `json:"generation_timestamp"`
	Validation        ValidationReport     `json:"validation"`
	Warnings          []string             `json:"warnings,omitempty"`
}

// GeneratedDocument is the pipeline's terminal output: the binary artifact
// plus its metadata record.
type GeneratedDocument struct {
	FileName string
	Data     []byte
	Record   GenerationRecord
}
