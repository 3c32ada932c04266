package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateReportValidation(t *testing.T) {
	// All rejections below happen before any storage or database call.
	s := NewReportService(nil, nil, nil)
	ctx := context.Background()
	reporter := uuid.New()

	t.Run("unknown kind", func(t *testing.T) {
		_, err := s.Create(ctx, reporter, "STOLEN", &CreateReportInput{
			SubjectType: "PERSON", Description: "red jacket", Location: "Hall A",
		})
		assert.ErrorContains(t, err, "invalid report kind")
	})

	t.Run("unknown subject type", func(t *testing.T) {
		_, err := s.Create(ctx, reporter, "LOST", &CreateReportInput{
			SubjectType: "PET", Description: "red jacket", Location: "Hall A",
		})
		assert.ErrorContains(t, err, "invalid subject type")
	})

	t.Run("no description and no transcript", func(t *testing.T) {
		_, err := s.Create(ctx, reporter, "LOST", &CreateReportInput{
			SubjectType: "ITEM", Location: "Hall A",
		})
		assert.ErrorContains(t, err, "description")
	})

	t.Run("missing location", func(t *testing.T) {
		_, err := s.Create(ctx, reporter, "FOUND", &CreateReportInput{
			SubjectType: "ITEM", Description: "black backpack",
		})
		assert.ErrorContains(t, err, "location")
	})
}

func TestListReportsRejectsUnknownFilters(t *testing.T) {
	s := NewReportService(nil, nil, nil)

	_, err := s.List("STOLEN", "")
	assert.ErrorContains(t, err, "invalid report kind filter")

	_, err = s.List("", "ARCHIVED")
	assert.ErrorContains(t, err, "invalid report status filter")
}
