// Package scoring computes the heuristic ATS quality score for a resume
// document: action verb density, role keyword coverage, length banding,
// section completeness and bullet quality, combined into a weighted overall
// score with ranked improvement suggestions.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/enhance"
	"github.com/jonathan/resume-builder/internal/types"
)

// Weights for the overall composite. They sum to exactly 1.0.
const (
	actionVerbWeight    = 0.20
	keywordWeight       = 0.15
	lengthWeight        = 0.15
	completenessWeight  = 0.30
	bulletQualityWeight = 0.20
)

// Normalization targets: 15 action verbs or 10 keyword hits max out their
// component scores.
const (
	actionVerbTarget = 15
	keywordTarget    = 10
)

// maxSuggestions caps the returned suggestion list.
const maxSuggestions = 5

var (
	nonLetters       = regexp.MustCompile(`[^a-zA-Z]`)
	bulletMetric     = regexp.MustCompile(`\d+%|\$\d+|\d+\+?`)
	specificityWords = regexp.MustCompile(`(?i)using|with|by|through|via`)
)

// CalculateATSScore scores a document snapshot against the heuristic ATS
// rubric for the given career role. It never mutates the document and is total
// over its input: an entirely empty document yields well-defined low scores.
func CalculateATSScore(doc *types.ResumeDocument, role types.CareerRole) types.ATSScore {
	suggestions := []string{}

	allText := collectText(doc)

	verbCount := countActionVerbs(allText)
	actionVerbScore := normalize(verbCount, actionVerbTarget)
	if verbCount < 5 {
		suggestions = append(suggestions, "Add more action verbs to your bullet points (aim for 15+)")
	}

	keywordCount := countRoleKeywords(allText, role)
	keywordScore := normalize(keywordCount, keywordTarget)
	if keywordCount < 5 {
		suggestions = append(suggestions, fmt.Sprintf("Include more %s-specific keywords in your resume", role))
	}

	// Length bands target 400-800 words for a one-page resume.
	wordCount := len(strings.Fields(allText))
	lengthScore := 100
	switch {
	case wordCount < 200:
		lengthScore = 40
		suggestions = append(suggestions, "Your resume is too short. Add more detail to your experiences")
	case wordCount < 300:
		lengthScore = 60
		suggestions = append(suggestions, "Consider adding more content to fill out your resume")
	case wordCount > 800:
		lengthScore = 70
		suggestions = append(suggestions, "Your resume may be too long. Consider condensing for a one-page format")
	case wordCount > 600:
		lengthScore = 90
	}

	completeness := calculateCompleteness(doc)
	if completeness < 80 {
		if len(doc.Summary) < 50 {
			suggestions = append(suggestions, "Add a professional summary (50-150 words)")
		}
		if len(doc.WorkExperience) == 0 {
			suggestions = append(suggestions, "Add work experience with bullet points")
		}
		if len(doc.Skills) == 0 {
			suggestions = append(suggestions, "Add a skills section with relevant abilities")
		}
	}

	allBullets := collectBullets(doc)
	bulletQuality := assessBulletQuality(allBullets)
	if bulletQuality < 60 && len(allBullets) > 0 {
		suggestions = append(suggestions, "Improve bullet points with metrics and specific achievements")
	}

	overall := round(actionVerbWeight*float64(actionVerbScore) +
		keywordWeight*float64(keywordScore) +
		lengthWeight*float64(lengthScore) +
		completenessWeight*float64(completeness) +
		bulletQualityWeight*float64(bulletQuality))

	if doc.PersonalInfo.LinkedIn == "" {
		suggestions = append(suggestions, "Add a LinkedIn profile URL")
	}
	if len(doc.Certifications) == 0 {
		suggestions = append(suggestions, "Consider adding relevant certifications")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return types.ATSScore{
		Overall:       overall,
		ActionVerbs:   actionVerbScore,
		Keywords:      keywordScore,
		Length:        lengthScore,
		Completeness:  completeness,
		BulletQuality: bulletQuality,
		Suggestions:   suggestions,
	}
}

// ScoreLabel maps a score to the label shown on the score card.
func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Great"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	case score >= 50:
		return "Needs Work"
	default:
		return "Poor"
	}
}

// collectText concatenates every free-text field in the document into the
// scoring corpus.
func collectText(doc *types.ResumeDocument) string {
	parts := []string{doc.Summary}
	for _, w := range doc.WorkExperience {
		parts = append(parts, w.Description)
		parts = append(parts, w.Bullets...)
	}
	for _, e := range doc.Education {
		parts = append(parts, e.Highlights...)
	}
	for _, p := range doc.Projects {
		parts = append(parts, p.Description)
		parts = append(parts, p.Bullets...)
	}
	return strings.Join(parts, " ")
}

// collectBullets gathers the union of work experience and project bullets.
func collectBullets(doc *types.ResumeDocument) []string {
	bullets := []string{}
	for _, w := range doc.WorkExperience {
		bullets = append(bullets, w.Bullets...)
	}
	for _, p := range doc.Projects {
		bullets = append(bullets, p.Bullets...)
	}
	return bullets
}

func countActionVerbs(text string) int {
	count := 0
	for _, word := range strings.Fields(text) {
		if enhance.IsActionVerb(nonLetters.ReplaceAllString(word, "")) {
			count++
		}
	}
	return count
}

func countRoleKeywords(text string, role types.CareerRole) int {
	count := 0
	for _, keyword := range enhance.KeywordsForRole(role) {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
		count += len(re.FindAllStringIndex(text, -1))
	}
	return count
}

// calculateCompleteness runs six binary section checks and scales the pass
// count to 0-100.
func calculateCompleteness(doc *types.ResumeDocument) int {
	const totalSections = 6
	filled := 0

	pi := doc.PersonalInfo
	if pi.FullName != "" && pi.Email != "" && pi.Phone != "" && pi.Title != "" {
		filled++
	}
	if len(doc.Summary) >= 50 {
		filled++
	}
	for _, w := range doc.WorkExperience {
		if len(w.Bullets) > 0 || len(w.Description) > 0 {
			filled++
			break
		}
	}
	if len(doc.Education) > 0 {
		filled++
	}
	totalSkills := 0
	for _, s := range doc.Skills {
		totalSkills += len(s.Skills)
	}
	if len(doc.Skills) > 0 && totalSkills >= 5 {
		filled++
	}
	if len(doc.Projects) > 0 || len(doc.Certifications) > 0 {
		filled++
	}

	return round(float64(filled) / totalSections * 100)
}

// assessBulletQuality awards per-bullet points for a leading action verb, a
// metric, an ideal length and a specificity connective, then averages across
// bullets. The two length bands are mutually exclusive.
func assessBulletQuality(bullets []string) int {
	if len(bullets) == 0 {
		return 0
	}

	total := 0
	for _, bullet := range bullets {
		score := 0

		first := nonLetters.ReplaceAllString(firstField(bullet), "")
		if enhance.IsActionVerb(first) {
			score += 30
		}
		if bulletMetric.MatchString(bullet) {
			score += 30
		}
		switch n := len(bullet); {
		case n >= 50 && n <= 150:
			score += 25
		case n >= 30 && n <= 200:
			score += 15
		}
		if specificityWords.MatchString(bullet) {
			score += 15
		}

		total += min(score, 100)
	}

	return round(float64(total) / float64(len(bullets)))
}

func firstField(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func normalize(count, target int) int {
	return min(round(float64(count)/float64(target)*100), 100)
}

func round(f float64) int {
	return int(math.Round(f))
}
