package enhance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestGenerateSuggestions_WeakShortBullet(t *testing.T) {
	got := GenerateSuggestions("Did some things", types.RoleDeveloper)

	// Fixed order: metrics, action verb, length. No keyword hint because the
	// text touches none of the role's vocabulary.
	require.Len(t, got, 3)
	assert.Contains(t, got[0], "quantifiable metrics")
	assert.Contains(t, got[1], "action verb")
	assert.Contains(t, got[2], "more detail")
}

func TestGenerateSuggestions_StrongBullet(t *testing.T) {
	text := "Developed APIs and testing pipelines with agile code review and programming practices, increasing coverage by 45%"

	got := GenerateSuggestions(text, types.RoleDeveloper)

	require.Len(t, got, 1)
	assert.Equal(t, "Consider mentioning: software development, debugging, version control", got[0])
}

func TestGenerateSuggestions_MetricVariants(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		hasMetric bool
	}{
		{"percentage", "Grew revenue by 25%", true},
		{"dollar amount", "Saved $40000 annually", true},
		{"counted users", "Onboarded 300 users in the first month", true},
		{"counted team members", "Mentored 4 team members", true},
		{"bare number without unit", "Shipped 3 releases", false},
		{"no numbers", "Shipped several releases", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSuggestions(tt.text, types.RoleOther)

			found := false
			for _, s := range got {
				if strings.Contains(s, "quantifiable metrics") {
					found = true
				}
			}
			assert.Equal(t, !tt.hasMetric, found)
		})
	}
}

func TestGenerateSuggestions_LongTextFlaggedConcise(t *testing.T) {
	long := strings.Repeat("Led the migration effort across regions. ", 6)

	got := GenerateSuggestions(long, types.RoleOther)

	joined := strings.Join(got, "\n")
	assert.Contains(t, joined, "more concise")
	assert.NotContains(t, joined, "more detail")
}

func TestGenerateSuggestions_KeywordHintCapped(t *testing.T) {
	// Touches exactly one developer keyword, so seven are missing; the hint
	// names only the first three.
	text := "Delivered agile initiatives across the organization with measurable impact for 20 team members"

	got := GenerateSuggestions(text, types.RoleDeveloper)

	require.Len(t, got, 1)
	assert.Equal(t, "Consider mentioning: software development, programming, debugging", got[0])
}

func TestGenerateSuggestions_EmptyForRoleWithoutVocabulary(t *testing.T) {
	got := GenerateSuggestions("Orchestrated the replatforming program with 12 team members, cutting costs by 30%", types.RoleOther)

	assert.Empty(t, got)
}
