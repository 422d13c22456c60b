package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/docparse"
	"github.com/oguzk/stajtakip/internal/pkg/filestorage"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// DocumentService stores uploaded internship forms and extracts their fields
type DocumentService struct {
	storage   filestorage.FileStorage
	extractor docparse.TextExtractor
}

// NewDocumentService creates a new document service instance
func NewDocumentService(storage filestorage.FileStorage, extractor docparse.TextExtractor) *DocumentService {
	return &DocumentService{storage: storage, extractor: extractor}
}

// ParseInternshipForm saves the uploaded form, extracts its text and returns
// the recognized student and internship fields for confirmation by the user.
func (s *DocumentService) ParseInternshipForm(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.ParsePDFResponse, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("no file uploaded")
	}

	documentURL, err := s.storage.SaveFileWithPath(fileHeader, "internship-documents")
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	text, err := s.extractor.ExtractText(ctx, file)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Document text extraction failed")
		return nil, apperrors.NewBadRequestError("document could not be read")
	}

	form, err := docparse.ParseForm(text)
	if err != nil {
		if errors.Is(err, docparse.ErrNoFields) {
			return nil, apperrors.NewBadRequestError("document is not a recognizable internship form")
		}
		return nil, err
	}

	return &dto.ParsePDFResponse{
		StudentInfo: dto.ParsedStudentInfo{
			Name:          form.StudentName,
			StudentNumber: form.StudentNumber,
			Phone:         form.Phone,
			Email:         form.Email,
			IsErasmus:     form.IsErasmus,
		},
		InternshipInfo: dto.ParsedInternshipInfo{
			Type:         form.InternshipType,
			StartDate:    form.StartDate,
			EndDate:      form.EndDate,
			DurationDays: form.DurationDays,
			CompanyName:  form.CompanyName,
			CompanyPhone: form.CompanyPhone,
			CompanyEmail: form.CompanyEmail,
			ContactName:  form.ContactName,
			ContactTitle: form.ContactTitle,
		},
		DocumentURL: documentURL,
	}, nil
}
