package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintATSScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(types.ATSScore{
		Overall:       72,
		ActionVerbs:   60,
		Keywords:      40,
		Length:        100,
		Completeness:  83,
		BulletQuality: 55,
		Suggestions:   []string{"Add a LinkedIn profile URL"},
	}, "Good")

	out := buf.String()
	assert.Contains(t, out, "ATS Score")
	assert.Contains(t, out, "72")
	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Add a LinkedIn profile URL")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintATSScore_NoSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(types.ATSScore{Overall: 95}, "Excellent")

	assert.NotContains(t, buf.String(), "Suggestions:")
}

func TestPrintResumeList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resumes := []types.ResumeDocument{
		{ID: "id-1", Name: "Backend Resume", UpdatedAt: time.Now()},
		{ID: "id-2", Name: "Frontend Resume", UpdatedAt: time.Now().Add(-time.Hour)},
	}
	p.PrintResumeList(resumes, "id-1")

	out := buf.String()
	assert.Contains(t, out, "Resumes (2)")
	assert.Contains(t, out, "Backend Resume")
	assert.Contains(t, out, "Frontend Resume")
	assert.Contains(t, out, "* Backend Resume")
	assert.NotContains(t, out, "* Frontend Resume")
}

func TestPrintResumeList_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeList(nil, "")

	assert.Contains(t, buf.String(), "No resumes stored yet.")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]string{"first", "second"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)

	assert.Contains(t, buf.String(), "looks solid")
}

func TestScoreBar_Bounds(t *testing.T) {
	assert.Equal(t, strings.Repeat(".", 20), scoreBar(0))
	assert.Equal(t, strings.Repeat("#", 20), scoreBar(100))
	assert.Len(t, scoreBar(50), 20)
}
