package jsonstore

import (
	"testing"
	"time"

	"github.com/azez-alhoot/fannifix-hub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechnicianRecord_NormalizeLegacyShape(t *testing.T) {
	record := &technicianRecord{
		ID:         "t-legacy",
		Name:       "فني",
		WhatsApp:   "96550009999",
		ServiceID:  "x",
		Areas:      []string{"a", "b"},
		PriceRange: "5-10 د.ك",
	}

	tech, err := record.normalize("kw")
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, tech.ServiceIDs)
	assert.Equal(t, []string{"a", "b"}, tech.AreaIDs)
	assert.Equal(t, "kw", tech.CountryCode)
	assert.Equal(t, "5-10 د.ك", tech.PriceEstimate)
	assert.Equal(t, entity.TechnicianStatusActive, tech.Status)
	assert.True(t, tech.CreatedAt.IsZero())
}

func TestTechnicianRecord_NormalizeIsIdempotent(t *testing.T) {
	record := &technicianRecord{
		ID:          "t-new",
		Name:        "فني",
		CountryCode: "sa",
		WhatsApp:    "96550008888",
		ServiceIDs:  []string{"ac", "plumbing"},
		AreaIDs:     []string{"hawalli"},
		Status:      "pending",
		CreatedAt:   "2024-06-01T00:00:00Z",

		// Stale legacy fields must not win over the current shape.
		ServiceID: "ignored",
		Areas:     []string{"ignored"},
	}

	tech, err := record.normalize("kw")
	require.NoError(t, err)

	assert.Equal(t, []string{"ac", "plumbing"}, tech.ServiceIDs)
	assert.Equal(t, []string{"hawalli"}, tech.AreaIDs)
	assert.Equal(t, "sa", tech.CountryCode)
	assert.Equal(t, entity.TechnicianStatusPending, tech.Status)
}

func TestParseDate(t *testing.T) {
	ts, err := parseDate("2024-03-01T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), ts)

	ts, err = parseDate("2023-11-20")
	require.NoError(t, err)
	assert.Equal(t, 2023, ts.Year())

	ts, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	_, err = parseDate("20/11/2023")
	assert.Error(t, err)
}
