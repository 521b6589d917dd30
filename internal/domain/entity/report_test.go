package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasIssueType(t *testing.T) {
	assert.False(t, (&WetlandReport{}).HasIssueType())
	assert.True(t, (&WetlandReport{Pollution: true}).HasIssueType())
	assert.True(t, (&WetlandReport{InvasiveSpecies: true}).HasIssueType())
	assert.True(t, (&WetlandReport{Drainage: true}).HasIssueType())
	assert.True(t, (&WetlandReport{Illegal: true}).HasIssueType())
	assert.True(t, (&WetlandReport{Development: true}).HasIssueType())
}
