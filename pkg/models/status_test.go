package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajitpratap0/entitykit/pkg/models"
)

func TestStatusIsValid(t *testing.T) {
	valid := []models.Status{
		models.StatusActive,
		models.StatusInactive,
		models.StatusPending,
	}
	for _, s := range valid {
		t.Run(string(s), func(t *testing.T) {
			assert.True(t, s.IsValid())
		})
	}

	assert.False(t, models.Status("bogus").IsValid())
	assert.False(t, models.Status("").IsValid())
}

func TestValidStatusesContainsAll(t *testing.T) {
	expected := []models.Status{
		models.StatusActive,
		models.StatusInactive,
		models.StatusPending,
	}
	assert.Len(t, models.ValidStatuses, len(expected))
	for _, e := range expected {
		assert.Contains(t, models.ValidStatuses, e)
	}
}

func TestStatusesPairwiseDistinct(t *testing.T) {
	seen := make(map[models.Status]bool)
	for _, s := range models.ValidStatuses {
		assert.False(t, seen[s], "duplicate status %q", s)
		seen[s] = true
	}
}
