package docparse

import (
	"errors"
	"testing"
)

const sampleFormText = `
T.C. MÜHENDİSLİK FAKÜLTESİ
ZORUNLU STAJ BAŞVURU FORMU

Adı Soyadı: Ahmet Yılmaz
Öğrenci No: 220104004001
Telefon: 05321234567
E-posta: ahmet.yilmaz@ogr.example.edu.tr

Staj Türü: Zorunlu Staj 2
Staj Başlama Tarihi: 01.07.2025
Staj Bitiş Tarihi: 29.07.2025
Staj Süresi: 20 iş günü

Firma Adı: ASELSAN
Firma Telefonu: 03125921000
Firma E-postası: info@aselsan.com.tr
Yetkili Adı Soyadı: Mehmet Demir
Yetkili Ünvanı: Takım Lideri
`

func TestParseForm(t *testing.T) {
	form, err := ParseForm(sampleFormText)
	if err != nil {
		t.Fatalf("ParseForm failed: %v", err)
	}

	if form.StudentName != "Ahmet Yılmaz" {
		t.Errorf("studentName = %q", form.StudentName)
	}
	if form.StudentNumber != "220104004001" {
		t.Errorf("studentNumber = %q", form.StudentNumber)
	}
	if form.Phone != "05321234567" {
		t.Errorf("phone = %q", form.Phone)
	}
	if form.Email != "ahmet.yilmaz@ogr.example.edu.tr" {
		t.Errorf("email = %q", form.Email)
	}
	if form.InternshipType != "Zorunlu Staj 2" {
		t.Errorf("internshipType = %q", form.InternshipType)
	}
	if form.StartDate != "2025-07-01" {
		t.Errorf("startDate = %q, dates must be normalized to ISO", form.StartDate)
	}
	if form.EndDate != "2025-07-29" {
		t.Errorf("endDate = %q", form.EndDate)
	}
	if form.DurationDays != 20 {
		t.Errorf("durationDays = %d", form.DurationDays)
	}
	if form.CompanyName != "ASELSAN" {
		t.Errorf("companyName = %q", form.CompanyName)
	}
	if form.CompanyPhone != "03125921000" {
		t.Errorf("companyPhone = %q", form.CompanyPhone)
	}
	if form.CompanyEmail != "info@aselsan.com.tr" {
		t.Errorf("companyEmail = %q", form.CompanyEmail)
	}
	if form.ContactName != "Mehmet Demir" {
		t.Errorf("contactName = %q", form.ContactName)
	}
	if form.ContactTitle != "Takım Lideri" {
		t.Errorf("contactTitle = %q", form.ContactTitle)
	}
	if form.IsErasmus {
		t.Error("form without Erasmus mention should not be flagged")
	}
}

func TestParseFormErasmusAndDefaults(t *testing.T) {
	text := `
Adı Soyadı: Zeynep Kaya
Öğrenci No: 220104004002
Staj Türü: Erasmus Stajı
Başlama Tarihi: 02.06.2025
Bitiş Tarihi: 11.07.2025
`
	form, err := ParseForm(text)
	if err != nil {
		t.Fatalf("ParseForm failed: %v", err)
	}

	if !form.IsErasmus {
		t.Error("Erasmus mention should set the flag")
	}
	if form.InternshipType != "Zorunlu Staj 1" {
		t.Errorf("type should default to Zorunlu Staj 1, got %q", form.InternshipType)
	}
	if form.StartDate != "2025-06-02" || form.EndDate != "2025-07-11" {
		t.Errorf("unexpected dates: %q, %q", form.StartDate, form.EndDate)
	}
}

func TestParseFormInvalidDateLeftEmpty(t *testing.T) {
	text := `
Adı Soyadı: Ali Veli
Başlama Tarihi: yakında
`
	form, err := ParseForm(text)
	if err != nil {
		t.Fatalf("ParseForm failed: %v", err)
	}
	if form.StartDate != "" {
		t.Errorf("unparseable date should stay empty, got %q", form.StartDate)
	}
}

func TestParseFormNoFields(t *testing.T) {
	if _, err := ParseForm("tamamen alakasız bir metin"); !errors.Is(err, ErrNoFields) {
		t.Errorf("expected ErrNoFields, got %v", err)
	}
}
