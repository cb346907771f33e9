package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestCalculateATSScore_EmptyDocument(t *testing.T) {
	doc := types.NewDocument()

	score := CalculateATSScore(doc, types.RoleDeveloper)

	assert.Equal(t, 0, score.ActionVerbs)
	assert.Equal(t, 0, score.Keywords)
	assert.Equal(t, 40, score.Length)
	assert.Equal(t, 0, score.Completeness)
	assert.Equal(t, 0, score.BulletQuality)
	// 0.15 weight on the short-length band is all that survives.
	assert.Equal(t, 6, score.Overall)

	require.Len(t, score.Suggestions, 5)
	assert.Equal(t, "Add more action verbs to your bullet points (aim for 15+)", score.Suggestions[0])
	assert.Equal(t, "Include more developer-specific keywords in your resume", score.Suggestions[1])
	assert.Equal(t, "Your resume is too short. Add more detail to your experiences", score.Suggestions[2])
}

func TestCalculateATSScore_DoesNotMutateDocument(t *testing.T) {
	doc := fullDocument()
	before := doc.Clone()

	first := CalculateATSScore(doc, types.RoleDeveloper)
	second := CalculateATSScore(doc, types.RoleDeveloper)

	assert.Equal(t, first, second)
	assert.Equal(t, before, doc)
}

func TestCalculateATSScore_ComponentsWithinBounds(t *testing.T) {
	docs := []*types.ResumeDocument{types.NewDocument(), fullDocument()}

	for _, doc := range docs {
		score := CalculateATSScore(doc, types.RoleDeveloper)
		for name, v := range map[string]int{
			"overall":       score.Overall,
			"actionVerbs":   score.ActionVerbs,
			"keywords":      score.Keywords,
			"length":        score.Length,
			"completeness":  score.Completeness,
			"bulletQuality": score.BulletQuality,
		} {
			assert.GreaterOrEqual(t, v, 0, name)
			assert.LessOrEqual(t, v, 100, name)
		}
		assert.LessOrEqual(t, len(score.Suggestions), 5)
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Great"},
		{80, "Great"},
		{79, "Good"},
		{70, "Good"},
		{69, "Fair"},
		{60, "Fair"},
		{59, "Needs Work"},
		{50, "Needs Work"},
		{49, "Poor"},
		{0, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreLabel(tt.score), "score=%d", tt.score)
	}
}

func TestCountActionVerbs_StripsPunctuationAndCase(t *testing.T) {
	text := "Led, developed and DEPLOYED the service. Also supported it."

	assert.Equal(t, 3, countActionVerbs(text))
}

func TestCountRoleKeywords_CountsEveryOccurrence(t *testing.T) {
	text := "Agile planning and agile delivery with SQL-free tooling"

	assert.Equal(t, 2, countRoleKeywords(text, types.RoleDeveloper))
	assert.Equal(t, 0, countRoleKeywords(text, types.RoleOther))
}

func TestCalculateCompleteness(t *testing.T) {
	empty := types.NewDocument()
	assert.Equal(t, 0, calculateCompleteness(empty))

	full := fullDocument()
	assert.Equal(t, 100, calculateCompleteness(full))

	half := types.NewDocument()
	half.PersonalInfo = fullDocument().PersonalInfo
	half.Summary = strings.Repeat("Experienced engineer. ", 3)
	half.Education = []types.Education{{ID: "e1", Institution: "State University"}}
	assert.Equal(t, 50, calculateCompleteness(half))
}

func TestCalculateCompleteness_SkillsNeedFiveEntries(t *testing.T) {
	doc := types.NewDocument()
	doc.Skills = []types.SkillCategory{{ID: "s1", Category: "Languages", Skills: []string{"Go", "SQL"}}}
	assert.Equal(t, 0, calculateCompleteness(doc))

	doc.Skills[0].Skills = []string{"Go", "SQL", "Python", "Bash", "Rust"}
	assert.Equal(t, 17, calculateCompleteness(doc))
}

func TestAssessBulletQuality_PerfectBullet(t *testing.T) {
	bullet := "Optimized deployment frequency by 45% using automated release pipelines"

	assert.Equal(t, 100, assessBulletQuality([]string{bullet}))
}

func TestAssessBulletQuality_WeakBullet(t *testing.T) {
	// No verb, no metric, no connective; too short for either length band.
	assert.Equal(t, 0, assessBulletQuality([]string{"fixed stuff"}))
}

func TestAssessBulletQuality_AveragesAcrossBullets(t *testing.T) {
	perfect := "Optimized deployment frequency by 45% using automated release pipelines"

	got := assessBulletQuality([]string{perfect, "fixed stuff"})

	assert.Equal(t, 50, got)
}

func TestAssessBulletQuality_NoBullets(t *testing.T) {
	assert.Equal(t, 0, assessBulletQuality(nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, normalize(0, 15))
	assert.Equal(t, 33, normalize(5, 15))
	assert.Equal(t, 100, normalize(15, 15))
	assert.Equal(t, 100, normalize(40, 15))
}

// fullDocument builds a document that passes every completeness check.
func fullDocument() *types.ResumeDocument {
	doc := types.NewDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FullName: "Jordan Rivers",
		Email:    "jordan@example.com",
		Phone:    "555-0100",
		Title:    "Software Engineer",
		LinkedIn: "https://linkedin.com/in/jordanrivers",
	}
	doc.Summary = "Experienced software engineer focused on reliable backend systems, observability and developer tooling across cloud platforms."
	doc.WorkExperience = []types.WorkExperience{{
		ID:       "w1",
		Company:  "Acme",
		Position: "Engineer",
		Bullets: []string{
			"Optimized deployment frequency by 45% using automated release pipelines",
			"Led code review practices adopted by 3 teams through documented guidelines",
		},
	}}
	doc.Education = []types.Education{{ID: "e1", Institution: "State University", Degree: "BSc"}}
	doc.Skills = []types.SkillCategory{{ID: "s1", Category: "Languages", Skills: []string{"Go", "SQL", "Python", "Bash", "Rust"}}}
	doc.Projects = []types.Project{{ID: "p1", Name: "Tooling", Description: "Built internal testing tooling with agile iteration"}}
	doc.Certifications = []types.Certification{{ID: "c1", Name: "Cloud Architect", Issuer: "Vendor"}}
	return doc
}
