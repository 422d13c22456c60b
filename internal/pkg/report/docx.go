// Package report produces internship evaluation reports as DOCX documents.
//
// A .docx file is a ZIP archive of WordprocessingML parts. The writer emits
// the three mandatory parts ([Content_Types].xml, the package relationships
// and word/document.xml) with a title paragraph followed by a table, which
// is all the evaluation report needs.
package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Document describes the report content: a title, a table header row and
// the data rows beneath it.
type Document struct {
	Title   string
	Headers []string
	Rows    [][]string
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Build renders the document and returns the bytes of a valid .docx file.
func Build(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(doc)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

func documentXML(doc Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	b.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="28"/></w:rPr><w:t xml:space="preserve">`)
	b.WriteString(escape(doc.Title))
	b.WriteString(`</w:t></w:r></w:p>`)

	b.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/>` +
		`<w:left w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/>` +
		`<w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/>` +
		`</w:tblBorders></w:tblPr>`)

	writeRow(&b, doc.Headers, true)
	for _, row := range doc.Rows {
		writeRow(&b, row, false)
	}

	b.WriteString(`</w:tbl><w:p/></w:body></w:document>`)
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, bold bool) {
	b.WriteString(`<w:tr>`)
	for _, cell := range cells {
		b.WriteString(`<w:tc><w:tcPr/><w:p><w:r>`)
		if bold {
			b.WriteString(`<w:rPr><w:b/></w:rPr>`)
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escape(cell))
		b.WriteString(`</w:t></w:r></w:p></w:tc>`)
	}
	b.WriteString(`</w:tr>`)
}

func escape(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText only fails on a failing writer; bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
