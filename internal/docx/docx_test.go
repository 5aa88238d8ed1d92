package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shawgichan/docgen-service/internal/docx/docxtest"
)

func defaultStyle() BodyStyle {
	return BodyStyle{FontFamily: "Times New Roman", FontSizePt: 12, LineSpacing: 1.5}
}

func TestDocumentParagraphs(t *testing.T) {
	doc := New(defaultStyle())
	doc.Title("My Thesis")
	doc.EmptyParagraph()
	doc.CenteredParagraph("By: A. Student")
	doc.PageBreak()
	doc.Heading("Introduction")
	doc.Paragraph("Body text.")
	doc.ListParagraph("List entry.")
	doc.HangingParagraph("Doe, J. (2020).")

	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	paras := docxtest.ReadParagraphs(t, data)
	if len(paras) != 8 {
		t.Fatalf("expected 8 paragraphs, got %d", len(paras))
	}

	tests := []struct {
		i    int
		want docxtest.Para
	}{
		{0, docxtest.Para{Style: "Title", Text: "My Thesis", Centered: true}},
		{1, docxtest.Para{}},
		{2, docxtest.Para{Text: "By: A. Student", Centered: true}},
		{3, docxtest.Para{PageBreak: true}},
		{4, docxtest.Para{Style: "Heading1", Text: "Introduction"}},
		{5, docxtest.Para{Text: "Body text."}},
		{6, docxtest.Para{Style: "ListParagraph", Text: "List entry."}},
		{7, docxtest.Para{Style: "ListParagraph", Text: "Doe, J. (2020).", Hanging: true}},
	}
	for _, tt := range tests {
		if paras[tt.i] != tt.want {
			t.Errorf("paragraph %d = %+v, want %+v", tt.i, paras[tt.i], tt.want)
		}
	}
}

func TestDocumentStyles(t *testing.T) {
	doc := New(BodyStyle{FontFamily: "Arial", FontSizePt: 11, LineSpacing: 2})
	doc.Paragraph("x")

	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	styles := docxtest.ReadPart(t, data, "word/styles.xml")

	for _, want := range []string{
		`w:ascii="Arial"`,
		`<w:sz w:val="22"/>`,             // 11pt in half-points
		`w:line="480" w:lineRule="auto"`, // double spacing in 240ths
		`w:styleId="Heading1"`,
		`w:styleId="Title"`,
		`w:styleId="ListParagraph"`,
	} {
		if !strings.Contains(styles, want) {
			t.Errorf("styles.xml missing %s", want)
		}
	}
}

func TestDocumentEscapesText(t *testing.T) {
	doc := New(defaultStyle())
	doc.Paragraph(`Smith & Jones <eds.> "2020"`)

	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	paras := docxtest.ReadParagraphs(t, data)
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
	if got := paras[0].Text; got != `Smith & Jones <eds.> "2020"` {
		t.Errorf("round-tripped text = %q", got)
	}
}

func TestDocumentPackageParts(t *testing.T) {
	doc := New(defaultStyle())
	doc.Paragraph("x")
	data, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, f := range zr.File {
		got[f.Name] = true
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/styles.xml",
	} {
		if !got[name] {
			t.Errorf("archive missing part %s", name)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.docx")

	first := New(defaultStyle())
	first.Paragraph("first")
	if err := first.Save(path); err != nil {
		t.Fatal(err)
	}

	second := New(defaultStyle())
	second.Paragraph("second")
	if err := second.Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	paras := docxtest.ReadParagraphs(t, data)
	if len(paras) != 1 || paras[0].Text != "second" {
		t.Errorf("expected overwritten file with one paragraph %q, got %+v", "second", paras)
	}
}
