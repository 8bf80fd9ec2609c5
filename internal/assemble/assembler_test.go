package assemble

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
	"github.com/YasinSaleem/legal-doc-ai/internal/style"
)

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(raw)
	}
	t.Fatal("word/document.xml missing")
	return ""
}

func ndaContent() docModel.GeneratedContent {
	return docModel.GeneratedContent{
		Title: "Non-Disclosure Agreement",
		Sections: []docModel.GeneratedSection{
			{Kind: docModel.KindParagraph, Text: "Between Alice Johnson and TechNova."},
			{Kind: docModel.KindHeading2, Text: "1. Confidentiality"},
			{Kind: docModel.KindParagraph, Text: "All information stays confidential."},
			{Kind: docModel.KindSignature, Text: "Disclosing Party: Alice Johnson\n\n_____________________"},
		},
	}
}

func TestAssemble_NDA(t *testing.T) {
	data, err := Assemble(ndaContent(), docModel.DocTypeNDA, style.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	doc := documentXML(t, data)

	for _, want := range []string{
		"Non-Disclosure Agreement",
		`<w:pStyle w:val="Heading1"/>`,
		`<w:pStyle w:val="Heading2"/>`,
		"Alice Johnson",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %s", want)
		}
	}
	// Single-party signature stays a plain paragraph.
	if strings.Contains(doc, "<w:tbl>") {
		t.Error("NDA signature must not use a table")
	}
}

func TestAssemble_ContractSignatureTable(t *testing.T) {
	content := docModel.GeneratedContent{
		Title: "Service Contract",
		Sections: []docModel.GeneratedSection{
			{Kind: docModel.KindParagraph, Text: "Terms."},
			{Kind: docModel.KindSignature, Text: "Disclosing Party: Alice\n\n______\n\n\nReceiving Party: TechNova\n\n______"},
		},
	}
	data, err := Assemble(content, docModel.DocTypeContract, style.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	doc := documentXML(t, data)

	if !strings.Contains(doc, "<w:tbl>") {
		t.Fatal("contract signature must render as a table")
	}
	if strings.Count(doc, "<w:tc>") != 2 {
		t.Errorf("cells = %d, want 2", strings.Count(doc, "<w:tc>"))
	}
	left := strings.Index(doc, "Disclosing Party")
	right := strings.Index(doc, "Receiving Party")
	if left == -1 || right == -1 || left > right {
		t.Error("parties out of order in signature table")
	}
}

func TestAssemble_TwoPartySignatureForNonNDATypes(t *testing.T) {
	signature := "Disclosing Party: Alice\n\n______\n\n\nReceiving Party: TechNova\n\n______"
	for _, dt := range []docModel.DocType{
		docModel.DocTypeContract, docModel.DocTypeMOU, docModel.DocTypeIPAgreement, docModel.DocTypeOfferLetter,
	} {
		t.Run(string(dt), func(t *testing.T) {
			content := docModel.GeneratedContent{
				Title: "Agreement",
				Sections: []docModel.GeneratedSection{
					{Kind: docModel.KindParagraph, Text: "Terms."},
					{Kind: docModel.KindSignature, Text: signature},
				},
			}
			data, err := Assemble(content, dt, style.Defaults())
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(documentXML(t, data), "<w:tbl>") {
				t.Error("two-party signature must render side by side")
			}
		})
	}
}

func TestAssemble_ContractSignatureWithoutSecondParty(t *testing.T) {
	content := docModel.GeneratedContent{
		Title: "Service Contract",
		Sections: []docModel.GeneratedSection{
			{Kind: docModel.KindSignature, Text: "Signed: Alice"},
		},
	}
	data, err := Assemble(content, docModel.DocTypeContract, style.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(documentXML(t, data), "<w:tbl>") {
		t.Error("one-party block should fall back to the stacked form")
	}
}

func TestAssemble_EmptyContentFails(t *testing.T) {
	_, err := Assemble(docModel.GeneratedContent{Title: "x"}, docModel.DocTypeNDA, style.Defaults())
	if !errors.Is(err, docModel.ErrAssembly) {
		t.Errorf("err = %v, want ErrAssembly", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name  string
		party string
		want  string
	}{
		{"plain", "Alice Johnson", "Alice_Johnson_NDA_EN_a1b2c3d4.docx"},
		{"punctuation", "O'Brien & Co.", "O_Brien_Co_NDA_EN_a1b2c3d4.docx"},
		{"missing", "", "Document_NDA_EN_a1b2c3d4.docx"},
		{"only symbols", "!!!", "Document_NDA_EN_a1b2c3d4.docx"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FileName(tc.party, docModel.DocTypeNDA, docModel.LanguageEnglish, "a1b2c3d4")
			if got != tc.want {
				t.Errorf("FileName = %q, want %q", got, tc.want)
			}
		})
	}
}
