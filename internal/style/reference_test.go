package style

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/YasinSaleem/legal-doc-ai/internal/docx"
	"github.com/YasinSaleem/legal-doc-ai/internal/domain/docModel"
)

func buildTemplate(t *testing.T) []byte {
	t.Helper()
	w := docx.NewWriter()
	w.AddParagraph("Reference Title", "Heading1", docModel.StyleRule{
		Font: "Georgia", Size: 20, Bold: true, Align: "center", Spacing: 1.0,
	})
	w.AddParagraph("1. Clause", "Heading2", docModel.StyleRule{
		Font: "Georgia", Size: 15, Bold: true, Align: "left",
	})
	w.AddParagraph("Body text of the clause.", "", docModel.StyleRule{
		Font: "Garamond", Size: 11, Align: "justify", Spacing: 1.5,
	})
	data, err := w.Save()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestSampleReference_RoundTrip(t *testing.T) {
	sampled, err := SampleReference(buildTemplate(t))
	if err != nil {
		t.Fatal(err)
	}

	h1, ok := sampled[docModel.KindHeading1]
	if !ok {
		t.Fatal("Heading 1 not sampled")
	}
	if h1.Font != "Georgia" || h1.Size != 20 || !h1.Bold || h1.Align != "center" {
		t.Errorf("Heading 1 = %+v", h1)
	}

	para, ok := sampled[docModel.KindParagraph]
	if !ok {
		t.Fatal("Paragraph not sampled")
	}
	if para.Font != "Garamond" || para.Size != 11 || para.Align != "justify" || para.Spacing != 1.5 {
		t.Errorf("Paragraph = %+v", para)
	}
}

func TestSampleReference_CorruptFile(t *testing.T) {
	if _, err := SampleReference([]byte("this is not a zip archive")); err == nil {
		t.Error("corrupt bytes must return an error")
	}
}

func TestSampleReference_ZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("readme.txt")
	f.Write([]byte("hello"))
	zw.Close()

	if _, err := SampleReference(buf.Bytes()); err == nil {
		t.Error("zip without word/document.xml must return an error")
	}
}

func TestMerge_SampledWins(t *testing.T) {
	base := Defaults()
	sampled := StyleSet{docModel.KindHeading1: {Font: "Georgia", Size: 20}}

	merged := Merge(base, sampled)
	if merged.Resolve(docModel.KindHeading1).Font != "Georgia" {
		t.Error("sampled rule must override the base")
	}
	if merged.Resolve(docModel.KindSignature) != base[docModel.KindSignature] {
		t.Error("unsampled kinds must keep base rules")
	}
	if base.Resolve(docModel.KindHeading1).Font == "Georgia" {
		t.Error("merge must not mutate the base set")
	}
}
