package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReportKind(t *testing.T) {
	assert.True(t, ValidReportKind(ReportKindLost))
	assert.True(t, ValidReportKind(ReportKindFound))
	assert.False(t, ValidReportKind("STOLEN"))
	assert.False(t, ValidReportKind("lost"))
	assert.False(t, ValidReportKind(""))
}

func TestValidSubjectType(t *testing.T) {
	assert.True(t, ValidSubjectType(SubjectPerson))
	assert.True(t, ValidSubjectType(SubjectItem))
	assert.False(t, ValidSubjectType("PET"))
}

func TestValidReportStatus(t *testing.T) {
	for _, s := range []string{ReportStatusOpen, ReportStatusMatched, ReportStatusReunited, ReportStatusClosed} {
		assert.True(t, ValidReportStatus(s), s)
	}
	assert.False(t, ValidReportStatus("ARCHIVED"))
}

func TestValidMatchStatus(t *testing.T) {
	for _, s := range []string{MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected} {
		assert.True(t, ValidMatchStatus(s), s)
	}
	assert.False(t, ValidMatchStatus("CONFIRMED_REUNITED"))
	assert.False(t, ValidMatchStatus("pending"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleVolunteer))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("GUEST"))
}

func TestValidNotificationType(t *testing.T) {
	assert.True(t, ValidNotificationType(NotificationSMS))
	assert.True(t, ValidNotificationType(NotificationCall))
	assert.False(t, ValidNotificationType("EMAIL"))
}
