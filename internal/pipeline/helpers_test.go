package pipeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func TestFindPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"none", "plain text", nil},
		{"single", "between [Name] and others", []string{"Name"}},
		{"multiple", "[Name] works at [Company] from [Date]", []string{"Name", "Company", "Date"}},
		{"empty brackets ignored", "weird [] token", nil},
		{"repeated", "[Name] and [Name]", []string{"Name", "Name"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := findPlaceholders(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("findPlaceholders(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestScanContent_TitleIndex(t *testing.T) {
	content := docModel.GeneratedContent{
		Title: "Agreement for [Company]",
		Sections: []docModel.GeneratedSection{
			{Kind: docModel.KindParagraph, Text: "clean"},
			{Kind: docModel.KindParagraph, Text: "signed by [Name]"},
		},
	}
	hits := scanContent(content)
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].SectionIndex != -1 || hits[0].Token != "Company" {
		t.Errorf("title hit = %+v", hits[0])
	}
	if hits[1].SectionIndex != 1 || hits[1].Token != "Name" {
		t.Errorf("section hit = %+v", hits[1])
	}
}

func TestInterpolate(t *testing.T) {
	meta := docModel.Metadata{Fields: map[docModel.FieldName]string{
		docModel.FieldPartyName: "Alice Johnson",
		docModel.FieldCompany:   docModel.ValueMissing,
	}}

	got := interpolate("between [Name] and [Company] on [Date]", meta)
	want := "between Alice Johnson and [Company] on [Date]"
	if got != want {
		t.Errorf("interpolate = %q, want %q", got, want)
	}
}

func TestForceSubstitute(t *testing.T) {
	got := forceSubstitute("pay [Salary] starting [Start_Date]")
	if got != "pay _________ starting _________" {
		t.Errorf("forceSubstitute = %q", got)
	}
	if findPlaceholders(got) != nil {
		t.Error("force substitution left a bracket token")
	}
}

func TestCompleteMetadata(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	fields := []docModel.FieldName{
		docModel.FieldPartyName, docModel.FieldCompany, docModel.FieldDate,
		docModel.FieldTerm, docModel.FieldJurisdiction,
	}
	extracted := map[docModel.FieldName]string{
		docModel.FieldPartyName: " Alice Johnson ",
		docModel.FieldCompany:   "TechNova",
	}

	meta := completeMetadata(extracted, fields, now)

	if got, _ := meta.Get(docModel.FieldPartyName); got != "Alice Johnson" {
		t.Errorf("Name = %q, want trimmed value", got)
	}
	if got := meta.Fields[docModel.FieldDate]; got != "March 14, 2026" {
		t.Errorf("Date default = %q", got)
	}
	if got := meta.Fields[docModel.FieldTerm]; got != "2 years" {
		t.Errorf("Term default = %q", got)
	}
	if got := meta.Fields[docModel.FieldJurisdiction]; got != "United States" {
		t.Errorf("Jurisdiction default = %q", got)
	}
	// Defaulted fields are still flagged missing; extracted ones are not.
	want := []docModel.FieldName{docModel.FieldDate, docModel.FieldTerm, docModel.FieldJurisdiction}
	if !reflect.DeepEqual(meta.Missing, want) {
		t.Errorf("Missing = %v, want %v", meta.Missing, want)
	}
	// Every field of the spec has an entry.
	for _, f := range fields {
		if _, ok := meta.Fields[f]; !ok {
			t.Errorf("field %s absent from metadata", f)
		}
	}
}

func TestReconcile(t *testing.T) {
	sch := docModel.Schema{
		DocType: docModel.DocTypeNDA,
		Title:   "Non-Disclosure Agreement",
		Sections: []docModel.Section{
			{Kind: docModel.KindParagraph, Text: "intro [Name]"},
			{Kind: docModel.KindHeading2, Text: "1. Term"},
			{Kind: docModel.KindSignature, Text: "Signed: [Name]"},
		},
	}
	meta := docModel.Metadata{Fields: map[docModel.FieldName]string{docModel.FieldPartyName: "Alice"}}

	// Model returned too many sections with wrong kinds and an empty slot.
	parsed := docModel.GeneratedContent{
		Title: "",
		Sections: []docModel.GeneratedSection{
			{Kind: docModel.KindHeading1, Text: "Intro text from model"},
			{Kind: docModel.KindParagraph, Text: ""},
			{Kind: docModel.KindParagraph, Text: "Signed by Alice"},
			{Kind: docModel.KindParagraph, Text: "extra section"},
		},
	}

	got := reconcile(parsed, sch, meta)

	if len(got.Sections) != len(sch.Sections) {
		t.Fatalf("sections = %d, want %d", len(got.Sections), len(sch.Sections))
	}
	if got.Title != sch.Title {
		t.Errorf("empty title must fall back to the schema title, got %q", got.Title)
	}
	for i, sec := range got.Sections {
		if sec.Kind != sch.Sections[i].Kind {
			t.Errorf("section %d kind = %q, want schema kind %q", i, sec.Kind, sch.Sections[i].Kind)
		}
	}
	if got.Sections[1].Text != "1. Term" {
		t.Errorf("empty slot must be synthesized from template, got %q", got.Sections[1].Text)
	}
}
