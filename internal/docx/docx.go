// Package docx writes minimal WordprocessingML (.docx) packages. A .docx file
// is a ZIP archive whose document body lives in word/document.xml; this package
// emits just the parts Word needs to open the file: content types, package
// relationships, the document body and a styles part carrying the default
// body style.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// MIMEType is the standard media type for .docx files.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// BodyStyle is the default run/paragraph style applied document-wide.
type BodyStyle struct {
	FontFamily  string
	FontSizePt  float64
	LineSpacing float64
}

// Document accumulates body paragraphs and serializes them as a .docx package.
// The zero value is not usable; construct with New.
type Document struct {
	style BodyStyle
	paras []string
}

func New(style BodyStyle) *Document {
	return &Document{style: style}
}

// Title adds the document title as a centered Title-style heading.
func (d *Document) Title(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// Heading adds a level-1 section heading.
func (d *Document) Heading(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// Paragraph adds a body paragraph.
func (d *Document) Paragraph(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// CenteredParagraph adds a center-aligned body paragraph.
func (d *Document) CenteredParagraph(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// EmptyParagraph adds a blank spacer paragraph.
func (d *Document) EmptyParagraph() {
	d.paras = append(d.paras, `<w:p/>`)
}

// ListParagraph adds a paragraph in the List Paragraph style.
func (d *Document) ListParagraph(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// HangingParagraph adds a list-style paragraph with a half-inch hanging
// indent: the first line starts flush left and wrapped lines are indented,
// the layout used for bibliography entries.
func (d *Document) HangingParagraph(text string) {
	d.paras = append(d.paras, fmt.Sprintf(
		`<w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:ind w:left="0" w:hanging="720"/></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escape(text)))
}

// PageBreak adds a hard page break.
func (d *Document) PageBreak() {
	d.paras = append(d.paras, `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

// Bytes serializes the document as a complete .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", d.stylesXML()},
		{"word/document.xml", d.documentXML()},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := fw.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the document to path, overwriting any existing file.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (d *Document) documentXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range d.paras {
		b.WriteString(p)
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// stylesXML renders the styles part. Font sizes are in half-points; line
// spacing is in 240ths of a line with lineRule auto.
func (d *Document) stylesXML() string {
	font := escape(d.style.FontFamily)
	sz := int(d.style.FontSizePt * 2)
	line := int(d.style.LineSpacing * 240)
	return xml.Header + fmt.Sprintf(
		`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
			`<w:docDefaults>`+
			`<w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/><w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/></w:rPr></w:rPrDefault>`+
			`<w:pPrDefault><w:pPr><w:spacing w:line="%[3]d" w:lineRule="auto"/></w:pPr></w:pPrDefault>`+
			`</w:docDefaults>`+
			`<w:style w:type="paragraph" w:styleId="Normal" w:default="1"><w:name w:val="Normal"/></w:style>`+
			`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="56"/><w:szCs w:val="56"/></w:rPr></w:style>`+
			`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="0"/><w:spacing w:before="240" w:after="120"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/><w:szCs w:val="32"/></w:rPr></w:style>`+
			`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:pPr><w:ind w:left="720"/></w:pPr></w:style>`+
			`</w:styles>`,
		font, sz, line)
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
