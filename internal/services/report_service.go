package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/models"
	"github.com/loftlabs/loft-backend/internal/storage"
	"github.com/loftlabs/loft-backend/internal/ws"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

// CreateReportInput is a parsed multipart report submission.
type CreateReportInput struct {
	SubjectType string
	RefIDs      []string
	Description string
	Transcript  string
	Language    string
	Location    string
	Photos      []*multipart.FileHeader
}

type ReportService struct {
	db       *gorm.DB
	images   *storage.ImageStore
	registry *ws.Registry
}

func NewReportService(db *gorm.DB, images *storage.ImageStore, registry *ws.Registry) *ReportService {
	return &ReportService{db: db, images: images, registry: registry}
}

// Create uploads photos, inserts the report row, and broadcasts the new
// report to all live connections. Photos go first: an upload failure
// aborts the whole request before any row exists. If the insert fails
// afterwards, the already-uploaded objects are deleted best-effort.
func (s *ReportService) Create(ctx context.Context, reporterID uuid.UUID, kind string, in *CreateReportInput) (*models.Report, error) {
	if !models.ValidReportKind(kind) {
		return nil, fmt.Errorf("invalid report kind: %s", kind)
	}
	if !models.ValidSubjectType(in.SubjectType) {
		return nil, fmt.Errorf("invalid subject type: must be %s or %s", models.SubjectPerson, models.SubjectItem)
	}

	description := in.Description
	if in.Transcript != "" {
		if description != "" {
			description = in.Transcript + " " + description
		} else {
			description = in.Transcript
		}
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description text or transcript is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, errors.New("location is required")
	}

	prefix := "lost_reports"
	if kind == models.ReportKindFound {
		prefix = "found_reports"
	}

	photoURLs := make([]string, 0, len(in.Photos))
	for _, photo := range in.Photos {
		url, err := s.uploadPhoto(ctx, photo, prefix)
		if err != nil {
			s.cleanupPhotos(ctx, photoURLs)
			return nil, fmt.Errorf("failed to upload photo %q: %w", photo.Filename, err)
		}
		photoURLs = append(photoURLs, url)
	}

	refIDs, _ := json.Marshal(in.RefIDs)
	urls, _ := json.Marshal(photoURLs)

	report := models.Report{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		Kind:        kind,
		SubjectType: in.SubjectType,
		RefIDs:      datatypes.JSON(refIDs),
		Description: description,
		Transcript:  in.Transcript,
		Language:    in.Language,
		Location:    in.Location,
		PhotoURLs:   datatypes.JSON(urls),
		Status:      models.ReportStatusOpen,
	}

	if err := s.db.Create(&report).Error; err != nil {
		s.cleanupPhotos(ctx, photoURLs)
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	slog.Info("report created", "report_id", report.ID.String(), "kind", kind, "photos", len(photoURLs))

	s.registry.Broadcast(ws.Event{
		Type:     "new_report",
		ReportID: report.ID.String(),
		Data:     report,
	})

	return &report, nil
}

func (s *ReportService) uploadPhoto(ctx context.Context, photo *multipart.FileHeader, prefix string) (string, error) {
	file, err := photo.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	contentType := photo.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return s.images.Upload(ctx, file, photo.Filename, contentType, photo.Size, prefix)
}

func (s *ReportService) cleanupPhotos(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.images.Delete(ctx, url); err != nil {
			slog.Error("failed to clean up orphaned photo", "url", url, "error", err)
		}
	}
}

func (s *ReportService) Get(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns reports filtered by kind and/or status; empty filters match
// everything. Unknown filter values are rejected rather than matching
// nothing silently.
func (s *ReportService) List(kind, status string) ([]models.Report, error) {
	if kind != "" && !models.ValidReportKind(kind) {
		return nil, fmt.Errorf("invalid report kind filter: %s", kind)
	}
	if status != "" && !models.ValidReportStatus(status) {
		return nil, fmt.Errorf("invalid report status filter: %s", status)
	}

	query := s.db.Model(&models.Report{})
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reports []models.Report
	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
