package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func renderDoc() *types.ResumeDocument {
	doc := types.NewDocument()
	doc.PersonalInfo = types.PersonalInfo{
		FullName: "Jordan Rivers",
		Email:    "jordan@example.com",
		Phone:    "555-0100",
		Title:    "Software Engineer",
	}
	doc.Summary = "Engineer focused on backend systems."
	doc.WorkExperience = []types.WorkExperience{{
		ID:        "w1",
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: "2020",
		Current:   true,
		Bullets:   []string{"Optimized deployments"},
	}}
	doc.Skills = []types.SkillCategory{{ID: "s1", Category: "Languages", Skills: []string{"Go", "SQL"}}}
	return doc
}

func TestRenderHTML_IncludesSections(t *testing.T) {
	html, err := RenderHTML(renderDoc(), types.DefaultSettings())
	require.NoError(t, err)

	assert.Contains(t, html, "Jordan Rivers")
	assert.Contains(t, html, "<h2>Summary</h2>")
	assert.Contains(t, html, "<h2>Work Experience</h2>")
	assert.Contains(t, html, "Present")
	assert.Contains(t, html, "Optimized deployments")
	assert.Contains(t, html, "<strong>Languages:</strong> Go, SQL")
	// Empty sections are omitted entirely.
	assert.NotContains(t, html, "<h2>Education</h2>")
	assert.NotContains(t, html, "<h2>Projects</h2>")
}

func TestRenderHTML_TemplateClass(t *testing.T) {
	settings := types.DefaultSettings()
	settings.Template = types.TemplateModern

	html, err := RenderHTML(renderDoc(), settings)
	require.NoError(t, err)

	assert.Contains(t, html, `<body class="modern">`)
}

func TestRenderHTML_HonorsSectionOrder(t *testing.T) {
	doc := renderDoc()
	doc.SectionOrder = []string{"skills", "summary"}

	html, err := RenderHTML(doc, types.DefaultSettings())
	require.NoError(t, err)

	skillsAt := strings.Index(html, "<h2>Skills</h2>")
	summaryAt := strings.Index(html, "<h2>Summary</h2>")
	require.GreaterOrEqual(t, skillsAt, 0)
	require.GreaterOrEqual(t, summaryAt, 0)
	assert.Less(t, skillsAt, summaryAt)
	// Sections not named in the order are dropped.
	assert.NotContains(t, html, "<h2>Work Experience</h2>")
}

func TestRenderHTML_EmptyOrderFallsBackToDefault(t *testing.T) {
	doc := renderDoc()
	doc.SectionOrder = nil

	html, err := RenderHTML(doc, types.DefaultSettings())
	require.NoError(t, err)

	assert.Contains(t, html, "<h2>Summary</h2>")
	assert.Contains(t, html, "<h2>Skills</h2>")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	doc := renderDoc()
	doc.Summary = `Built <script>alert("x")</script> tooling`

	html, err := RenderHTML(doc, types.DefaultSettings())
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
