// Package docxtest inspects generated .docx archives in tests by re-reading
// the ZIP and token-walking word/document.xml.
package docxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

// Para is one w:p element of a document body.
type Para struct {
	Style     string
	Text      string
	Centered  bool
	Hanging   bool
	PageBreak bool
}

// ReadParagraphs opens the .docx bytes as a ZIP and collects one entry per
// w:p element of word/document.xml.
func ReadParagraphs(t *testing.T, data []byte) []Para {
	t.Helper()

	rc := openPart(t, data, "word/document.xml")
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paras []Para
	var cur Para
	var text strings.Builder
	var inParagraph bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				inParagraph = true
				cur = Para{}
				text.Reset()
			case "pStyle":
				for _, a := range el.Attr {
					if a.Name.Local == "val" {
						cur.Style = a.Value
					}
				}
			case "jc":
				for _, a := range el.Attr {
					if a.Name.Local == "val" && a.Value == "center" {
						cur.Centered = true
					}
				}
			case "ind":
				for _, a := range el.Attr {
					if a.Name.Local == "hanging" && a.Value != "0" {
						cur.Hanging = true
					}
				}
			case "br":
				for _, a := range el.Attr {
					if a.Name.Local == "type" && a.Value == "page" {
						cur.PageBreak = true
					}
				}
			}
		case xml.CharData:
			if inParagraph {
				text.Write(el)
			}
		case xml.EndElement:
			if el.Name.Local == "p" && inParagraph {
				inParagraph = false
				cur.Text = text.String()
				paras = append(paras, cur)
			}
		}
	}
	return paras
}

// ReadPart returns the named archive part as a string.
func ReadPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	rc := openPart(t, data, name)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(body)
}

func openPart(t *testing.T, data []byte, name string) io.ReadCloser {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		return rc
	}
	t.Fatalf("%s not found in archive", name)
	return nil
}
