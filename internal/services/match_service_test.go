package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSetStatusRejectsUnknownValues(t *testing.T) {
	s := NewMatchService(nil, nil)

	for _, status := range []string{"", "pending", "CONFIRMED_REUNITED", "FALSE_MATCH"} {
		_, err := s.SetStatus(uuid.New(), status)
		assert.ErrorIs(t, err, ErrInvalidMatchStatus, "status %q", status)
	}
}
