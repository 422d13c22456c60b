// Package docparse extracts student and internship fields from the text of
// uploaded internship application forms.
//
// Text extraction from the PDF itself is delegated to a TextExtractor so the
// parsing rules can be tested without a PDF engine and the engine can be
// swapped without touching the rules.
package docparse

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/oguzk/stajtakip/internal/pkg/helpers"
)

// ErrNoFields is returned when none of the known form labels were found in
// the extracted text.
var ErrNoFields = errors.New("no recognizable form fields in document")

// TextExtractor turns a document stream into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// Form holds the fields recognized on an internship application form.
// Dates are normalized to ISO YYYY-MM-DD.
type Form struct {
	StudentName   string
	StudentNumber string
	Phone         string
	Email         string
	IsErasmus     bool

	InternshipType string // "Zorunlu Staj 1" or "Zorunlu Staj 2"
	StartDate      string
	EndDate        string
	DurationDays   int
	CompanyName    string
	CompanyPhone   string
	CompanyEmail   string
	ContactName    string
	ContactTitle   string
}

// Field labels as printed on the internship application form. Labels are
// matched case-insensitively at line starts, value follows after ":".
var fieldPatterns = map[string]*regexp.Regexp{
	"studentName":   labelPattern(`Adı\s*Soyadı`),
	"studentNumber": labelPattern(`Öğrenci\s*No(?:\.|su)?`),
	"phone":         labelPattern(`Telefon(?:\s*No)?`),
	"email":         labelPattern(`E-?posta`),
	"type":          labelPattern(`Staj\s*Türü`),
	"startDate":     labelPattern(`Staj\s*Başlama\s*Tarihi|Başlama\s*Tarihi`),
	"endDate":       labelPattern(`Staj\s*Bitiş\s*Tarihi|Bitiş\s*Tarihi`),
	"duration":      labelPattern(`Staj\s*Süresi|Süresi?\s*\(?(?:iş\s*)?gün\)?`),
	"companyName":   labelPattern(`(?:Firma|Kurum|İşyeri)(?:nın|nin)?\s*Adı`),
	"companyPhone":  labelPattern(`(?:Firma|Kurum|İşyeri)\s*Telefon(?:u|\s*No)?`),
	"companyEmail":  labelPattern(`(?:Firma|Kurum|İşyeri)\s*E-?posta(?:sı)?`),
	"contactName":   labelPattern(`Yetkili(?:nin)?\s*Adı(?:\s*Soyadı)?`),
	"contactTitle":  labelPattern(`Yetkili(?:nin)?\s*(?:Ünvanı|Unvanı|Görevi)`),
}

var erasmusPattern = regexp.MustCompile(`(?i)Erasmus`)
var staj2Pattern = regexp.MustCompile(`(?i)Staj\s*(?:2|II)`)
var durationDigits = regexp.MustCompile(`\d+`)

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^\s*(?:` + label + `)\s*[:：]\s*(.+)$`)
}

// ParseForm applies the form field rules to extracted document text.
func ParseForm(text string) (*Form, error) {
	values := make(map[string]string, len(fieldPatterns))
	found := false
	for key, pattern := range fieldPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			values[key] = strings.TrimSpace(m[1])
			found = true
		}
	}
	if !found {
		return nil, ErrNoFields
	}

	form := &Form{
		StudentName:   values["studentName"],
		StudentNumber: values["studentNumber"],
		Phone:         values["phone"],
		Email:         values["email"],
		CompanyName:   values["companyName"],
		CompanyPhone:  values["companyPhone"],
		CompanyEmail:  values["companyEmail"],
		ContactName:   values["contactName"],
		ContactTitle:  values["contactTitle"],
		IsErasmus:     erasmusPattern.MatchString(text),
	}

	form.InternshipType = "Zorunlu Staj 1"
	if staj2Pattern.MatchString(values["type"]) {
		form.InternshipType = "Zorunlu Staj 2"
	}

	if v, ok := values["startDate"]; ok {
		if iso, err := helpers.NormalizeTurkishDate(v); err == nil {
			form.StartDate = iso
		}
	}
	if v, ok := values["endDate"]; ok {
		if iso, err := helpers.NormalizeTurkishDate(v); err == nil {
			form.EndDate = iso
		}
	}
	if v, ok := values["duration"]; ok {
		if digits := durationDigits.FindString(v); digits != "" {
			form.DurationDays, _ = strconv.Atoi(digits)
		}
	}
	return form, nil
}
