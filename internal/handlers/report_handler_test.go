package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRefIDs(t *testing.T) {
	assert.Nil(t, splitRefIDs(""))
	assert.Equal(t, []string{"p1"}, splitRefIDs("p1"))
	assert.Equal(t, []string{"p1", "p2"}, splitRefIDs("p1, p2"))
	assert.Equal(t, []string{"p1"}, splitRefIDs("p1,, "))
}
