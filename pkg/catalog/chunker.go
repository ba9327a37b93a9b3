package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

type ChunkKind string

const (
	ChunkKindOverview    ChunkKind = "overview"
	ChunkKindEligibility ChunkKind = "eligibility"
	ChunkKindApplication ChunkKind = "application"
	ChunkKindFeatures    ChunkKind = "features"
)

var ErrInvalidScheme = errors.New("scheme is missing required fields")

// Chunk is a read-only projection of one scheme, sized for independent
// retrieval. Each kind carries only the fields its template renders.
type Chunk struct {
	Kind                ChunkKind
	SchemeName          string
	Ministry            string
	Objective           string
	Benefit             string
	EligibilityCriteria []string
	Exclusions          []string
	ApplicationProcess  string
	DocumentsRequired   []string
	Features            []string
	LastUpdated         string
	OfficialWebsite     string
}

// ValidateScheme rejects schemes that cannot be chunked. Callers must
// validate before ChunkScheme; there are no silent defaults.
func ValidateScheme(scheme *entity.Scheme) error {
	if scheme == nil {
		return fmt.Errorf("%w: scheme is nil", ErrInvalidScheme)
	}
	if strings.TrimSpace(scheme.SchemeName) == "" {
		return fmt.Errorf("%w: scheme_name is empty", ErrInvalidScheme)
	}
	if strings.TrimSpace(scheme.Ministry) == "" {
		return fmt.Errorf("%w: ministry is empty for scheme %q", ErrInvalidScheme, scheme.SchemeName)
	}
	if strings.TrimSpace(scheme.Objective) == "" {
		return fmt.Errorf("%w: objective is empty for scheme %q", ErrInvalidScheme, scheme.SchemeName)
	}
	if len(scheme.EligibilityCriteria) == 0 {
		return fmt.Errorf("%w: eligibility criteria are empty for scheme %q", ErrInvalidScheme, scheme.SchemeName)
	}
	return nil
}

// ChunkScheme splits one scheme into retrieval chunks in fixed order:
// overview, eligibility, application, and features when the scheme has
// any features. Deterministic and side-effect free.
func ChunkScheme(scheme *entity.Scheme) ([]Chunk, error) {
	if err := ValidateScheme(scheme); err != nil {
		return nil, err
	}

	chunks := []Chunk{
		{
			Kind:            ChunkKindOverview,
			SchemeName:      scheme.SchemeName,
			Ministry:        scheme.Ministry,
			Objective:       scheme.Objective,
			Benefit:         scheme.Benefit,
			LastUpdated:     scheme.LastUpdated,
			OfficialWebsite: scheme.OfficialWebsite,
		},
		{
			Kind:                ChunkKindEligibility,
			SchemeName:          scheme.SchemeName,
			Ministry:            scheme.Ministry,
			EligibilityCriteria: scheme.EligibilityCriteria,
			Exclusions:          scheme.Exclusions,
			LastUpdated:         scheme.LastUpdated,
			OfficialWebsite:     scheme.OfficialWebsite,
		},
		{
			Kind:               ChunkKindApplication,
			SchemeName:         scheme.SchemeName,
			Ministry:           scheme.Ministry,
			ApplicationProcess: scheme.ApplicationProcess,
			DocumentsRequired:  scheme.DocumentsRequired,
			LastUpdated:        scheme.LastUpdated,
			OfficialWebsite:    scheme.OfficialWebsite,
		},
	}

	if len(scheme.Features) > 0 {
		chunks = append(chunks, Chunk{
			Kind:            ChunkKindFeatures,
			SchemeName:      scheme.SchemeName,
			Ministry:        scheme.Ministry,
			Features:        scheme.Features,
			LastUpdated:     scheme.LastUpdated,
			OfficialWebsite: scheme.OfficialWebsite,
		})
	}

	return chunks, nil
}

// Render produces the display text for a chunk. Empty optional parts
// are omitted, never rendered as placeholders. Search results must
// reproduce what was indexed, so this is the only render path.
func (c *Chunk) Render() string {
	var parts []string

	switch c.Kind {
	case ChunkKindOverview:
		parts = []string{
			fmt.Sprintf("Scheme: %s", c.SchemeName),
			fmt.Sprintf("Ministry: %s", c.Ministry),
			fmt.Sprintf("Objective: %s", c.Objective),
			optional("Benefits: %s", c.Benefit),
		}
	case ChunkKindEligibility:
		parts = []string{
			fmt.Sprintf("Scheme: %s", c.SchemeName),
			fmt.Sprintf("Eligibility Criteria:\n%s", bulleted(c.EligibilityCriteria)),
			optional("Exclusions:\n%s", bulleted(c.Exclusions)),
		}
	case ChunkKindApplication:
		parts = []string{
			fmt.Sprintf("Scheme: %s", c.SchemeName),
			optional("Application Process: %s", c.ApplicationProcess),
			optional("Documents Required:\n%s", bulleted(c.DocumentsRequired)),
			optional("Website: %s", c.OfficialWebsite),
		}
	case ChunkKindFeatures:
		parts = []string{
			fmt.Sprintf("Scheme: %s", c.SchemeName),
			fmt.Sprintf("Features:\n%s", bulleted(c.Features)),
		}
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

func optional(format, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return fmt.Sprintf(format, value)
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
