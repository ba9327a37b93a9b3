package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

func validScheme() *entity.Scheme {
	return &entity.Scheme{
		SchemeName:          "Pradhan Mantri Krishi Sinchayee Yojana",
		Ministry:            "Ministry of Agriculture and Farmers Welfare",
		Objective:           "Expand cultivated area with assured irrigation",
		Benefit:             "Up to 55% subsidy on drip irrigation systems",
		EligibilityCriteria: []string{"All farmers with cultivable land", "Valid land records"},
		Exclusions:          []string{"Institutional land holders"},
		ApplicationProcess:  "Apply through the state agriculture portal",
		DocumentsRequired:   []string{"Land records", "Aadhaar card"},
		OfficialWebsite:     "https://pmksy.gov.in",
		LastUpdated:         "2025-04-01",
	}
}

func TestChunkSchemeWithoutFeatures(t *testing.T) {
	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, ChunkKindOverview, chunks[0].Kind)
	assert.Equal(t, ChunkKindEligibility, chunks[1].Kind)
	assert.Equal(t, ChunkKindApplication, chunks[2].Kind)
}

func TestChunkSchemeWithFeatures(t *testing.T) {
	scheme := validScheme()
	scheme.Features = []string{"Per drop more crop", "Micro irrigation fund"}

	chunks, err := ChunkScheme(scheme)
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	assert.Equal(t, ChunkKindFeatures, chunks[3].Kind)
}

func TestChunkSchemeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Scheme)
	}{
		{"missing name", func(s *entity.Scheme) { s.SchemeName = "" }},
		{"missing ministry", func(s *entity.Scheme) { s.Ministry = "  " }},
		{"missing objective", func(s *entity.Scheme) { s.Objective = "" }},
		{"missing eligibility criteria", func(s *entity.Scheme) { s.EligibilityCriteria = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheme := validScheme()
			tt.mutate(scheme)

			chunks, err := ChunkScheme(scheme)
			assert.Nil(t, chunks)
			assert.ErrorIs(t, err, ErrInvalidScheme)
		})
	}
}

func TestChunkSchemeNil(t *testing.T) {
	_, err := ChunkScheme(nil)
	assert.ErrorIs(t, err, ErrInvalidScheme)
}

func TestRenderOverview(t *testing.T) {
	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)

	text := chunks[0].Render()
	assert.Contains(t, text, "Scheme: Pradhan Mantri Krishi Sinchayee Yojana")
	assert.Contains(t, text, "Ministry: Ministry of Agriculture and Farmers Welfare")
	assert.Contains(t, text, "Objective: Expand cultivated area with assured irrigation")
	assert.Contains(t, text, "Benefits: Up to 55% subsidy on drip irrigation systems")
}

func TestRenderEligibilityBullets(t *testing.T) {
	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)

	text := chunks[1].Render()
	assert.Contains(t, text, "Eligibility Criteria:\n- All farmers with cultivable land\n- Valid land records")
	assert.Contains(t, text, "Exclusions:\n- Institutional land holders")
}

func TestRenderOmitsEmptyOptionalParts(t *testing.T) {
	scheme := validScheme()
	scheme.Benefit = ""
	scheme.Exclusions = nil

	chunks, err := ChunkScheme(scheme)
	require.NoError(t, err)

	assert.NotContains(t, chunks[0].Render(), "Benefits:")
	assert.NotContains(t, chunks[1].Render(), "Exclusions:")
}

func TestRenderDeterministic(t *testing.T) {
	scheme := validScheme()
	first, err := ChunkScheme(scheme)
	require.NoError(t, err)
	second, err := ChunkScheme(scheme)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Render(), second[i].Render())
	}
}
