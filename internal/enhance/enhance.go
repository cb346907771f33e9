package enhance

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/resume-builder/internal/types"
)

var trailingPeriods = regexp.MustCompile(`\.+$`)

// Enhancer applies randomized text transforms. The random source is injected
// so tests can fix a seed and assert exact output; production callers use
// NewDefault.
type Enhancer struct {
	rng *rand.Rand
}

// New returns an Enhancer drawing from the given random source.
func New(rng *rand.Rand) *Enhancer {
	return &Enhancer{rng: rng}
}

// NewDefault returns an Enhancer seeded from the wall clock.
func NewDefault() *Enhancer {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (e *Enhancer) pick(items []string) string {
	return items[e.rng.Intn(len(items))]
}

// EnhanceBulletPoint rewrites a bullet so it leads with a strong action verb:
// a weak lead-in phrase is replaced with a stronger synonym, and a bullet that
// still does not start with a lexicon verb gets one prepended, chosen by
// category from the bullet's own wording. The result is capitalized and never
// ends with a period. Callers reject empty input before calling.
func (e *Enhancer) EnhanceBulletPoint(bullet string, _ types.CareerRole) string {
	enhanced := strings.TrimSpace(bullet)

	for _, wp := range weakPhrases {
		if wp.anchored.MatchString(enhanced) {
			enhanced = wp.anchored.ReplaceAllString(enhanced, e.pick(wp.replacements))
		}
	}

	if first := firstWord(enhanced); !allVerbsSet[strings.ToLower(first)] {
		verb := e.pick(ActionVerbCategories[sniffCategory(enhanced)])
		enhanced = fmt.Sprintf("%s %s", verb, lowerFirst(enhanced))
	}

	enhanced = capitalizeFirst(enhanced)
	return trailingPeriods.ReplaceAllString(enhanced, "")
}

// EnhanceSummary replaces every occurrence of each weak phrase anywhere in the
// summary. The role and level parameters do not alter the output yet; keyword
// injection is a deliberate no-op and the signature is kept stable for the UI
// caller.
func (e *Enhancer) EnhanceSummary(summary string, _ types.CareerRole, _ types.CareerLevel) string {
	enhanced := strings.TrimSpace(summary)
	for _, wp := range weakPhrases {
		if wp.anywhere.MatchString(enhanced) {
			enhanced = wp.anywhere.ReplaceAllString(enhanced, e.pick(wp.replacements))
		}
	}
	return enhanced
}

// GenerateProfessionalSummary fills one of three fixed paragraph templates
// with a qualitative experience descriptor, the title and up to the first
// three skills. yearsExp is typically the document's EstimatedYears value.
func (e *Enhancer) GenerateProfessionalSummary(name, title string, yearsExp int, _ types.CareerRole, skills []string) string {
	_ = name // reserved for personalized templates

	descriptor := experienceDescriptor(yearsExp)

	topSkills := skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	joined := strings.Join(topSkills, ", ")

	expClause := "demonstrated"
	bringsClause := "Combines strong foundational knowledge"
	withClause := "eager to apply skills and knowledge"
	if yearsExp > 0 {
		expClause = fmt.Sprintf("%d+ years of", yearsExp)
		bringsClause = fmt.Sprintf("Brings %d+ years of hands-on experience", yearsExp)
		withClause = fmt.Sprintf("with %d+ years of progressive experience", yearsExp)
	}

	templates := []string{
		fmt.Sprintf("%s %s with %s experience in %s. Proven track record of delivering high-quality results and driving continuous improvement. Passionate about leveraging technical expertise to solve complex problems and contribute to team success.",
			descriptor, title, expClause, orDefault(joined, "the field")),
		fmt.Sprintf("%s professional specializing in %s with expertise in %s. %s with a commitment to excellence and innovation. Adept at collaborating with cross-functional teams to achieve organizational objectives.",
			descriptor, strings.ToLower(title), orDefault(joined, "key industry areas"), bringsClause),
		fmt.Sprintf("Dynamic %s %s in %s. Known for %s approach to problem-solving and ability to deliver measurable results. Committed to continuous learning and professional development.",
			title, withClause, orDefault(joined, "the industry"), descriptor),
	}

	return e.pick(templates)
}

// experienceDescriptor maps years of experience onto a qualitative band.
func experienceDescriptor(yearsExp int) string {
	switch {
	case yearsExp < 2:
		return "motivated and detail-oriented"
	case yearsExp < 5:
		return "results-driven"
	case yearsExp < 10:
		return "experienced and accomplished"
	default:
		return "seasoned and strategic"
	}
}

// sniffCategory picks a verb category from keyword hints in the text,
// defaulting to achievement.
func sniffCategory(text string) VerbCategory {
	lower := strings.ToLower(text)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("team", "lead"):
		return CategoryLeadership
	case contains("create", "build", "develop"):
		return CategoryCreation
	case contains("improve", "increase", "reduce"):
		return CategoryImprovement
	case contains("analyze", "research"):
		return CategoryAnalysis
	case contains("code", "implement", "deploy"):
		return CategoryTechnical
	default:
		return CategoryAchievement
	}
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
