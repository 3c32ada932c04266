package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/loftlabs/loft-backend/internal/models"
	"github.com/loftlabs/loft-backend/internal/ws"
	"gorm.io/gorm"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidMatchStatus = errors.New("invalid match status: must be PENDING, CONFIRMED, or REJECTED")
)

// MatchService reviews matches produced by the external matching pipeline.
// It never creates match rows itself.
type MatchService struct {
	db       *gorm.DB
	registry *ws.Registry
}

func NewMatchService(db *gorm.DB, registry *ws.Registry) *MatchService {
	return &MatchService{db: db, registry: registry}
}

// ListForReport returns all matches referencing the report on either side.
func (s *MatchService) ListForReport(reportID uuid.UUID) ([]models.Match, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var matches []models.Match
	err := s.db.
		Where("lost_report_id = ? OR found_report_id = ?", reportID, reportID).
		Order("fused_score DESC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// SetStatus moves a match through its review states. Confirming a match
// marks both linked reports REUNITED and notifies both report owners over
// their live connections.
func (s *MatchService) SetStatus(matchID uuid.UUID, status string) (*models.Match, error) {
	if !models.ValidMatchStatus(status) {
		return nil, ErrInvalidMatchStatus
	}

	var match models.Match
	if err := s.db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&match).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update match: %w", err)
		}
		if status == models.MatchStatusConfirmed {
			err := tx.Model(&models.Report{}).
				Where("id IN ?", []uuid.UUID{match.LostReportID, match.FoundReportID}).
				Update("status", models.ReportStatusReunited).Error
			if err != nil {
				return fmt.Errorf("failed to update linked reports: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	match.Status = status

	slog.Info("match status updated", "match_id", matchID.String(), "status", status)
	s.notifyOwners(&match)

	return &match, nil
}

// notifyOwners pushes the status change to the owners of both linked
// reports. Owners without live connections simply miss the push.
func (s *MatchService) notifyOwners(match *models.Match) {
	evt := ws.Event{
		Type:    "match_status",
		MatchID: match.ID.String(),
		Data:    match,
	}

	var reports []models.Report
	err := s.db.Find(&reports, "id IN ?", []uuid.UUID{match.LostReportID, match.FoundReportID}).Error
	if err != nil {
		slog.Error("failed to load reports for match notification", "match_id", match.ID.String(), "error", err)
		return
	}

	seen := make(map[uuid.UUID]bool, len(reports))
	for _, report := range reports {
		if seen[report.ReporterID] {
			continue
		}
		seen[report.ReporterID] = true
		s.registry.Push(report.ReporterID, evt)
	}
}
