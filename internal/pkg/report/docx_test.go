package report

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func buildTestDoc(t *testing.T, doc Document) map[string]string {
	t.Helper()

	data, err := Build(doc)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}

	parts := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestBuildProducesMandatoryParts(t *testing.T) {
	parts := buildTestDoc(t, Document{
		Title:   "Bilgisayar Mühendisliği 2025 Yaz Staj Değerlendirme Raporu",
		Headers: []string{"Öğrenci No", "Adı Soyadı", "Not"},
		Rows: [][]string{
			{"220104004001", "Ahmet Yılmaz", "S"},
			{"220104004002", "Zeynep Kaya", "U"},
		},
	})

	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing archive part %s", name)
		}
	}

	body := parts["word/document.xml"]
	if !strings.Contains(body, "Staj Değerlendirme Raporu") {
		t.Error("title missing from document body")
	}
	if !strings.Contains(body, "220104004001") || !strings.Contains(body, "Zeynep Kaya") {
		t.Error("data rows missing from document body")
	}
	if strings.Count(body, "<w:tr>") != 3 {
		t.Errorf("expected 3 table rows, got %d", strings.Count(body, "<w:tr>"))
	}
}

func TestBuildEscapesXML(t *testing.T) {
	parts := buildTestDoc(t, Document{
		Title:   "A & B <Rapor>",
		Headers: []string{"Firma"},
		Rows:    [][]string{{`"Özel" <Şirket> & Ortakları`}},
	})

	body := parts["word/document.xml"]
	if strings.Contains(body, "<Şirket>") || strings.Contains(body, "A & B <Rapor>") {
		t.Error("special characters must be escaped in the document body")
	}
	if !strings.Contains(body, "A &amp; B &lt;Rapor&gt;") {
		t.Error("escaped title not found in document body")
	}
}
