// Package enhance provides the rule-based content enhancement engine: weak
// phrase substitution, action verb injection, summary generation and
// per-bullet improvement suggestions. No external AI is involved.
package enhance

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// VerbCategory names one semantic group of action verbs.
type VerbCategory string

// Verb categories used for categorized verb injection.
const (
	CategoryLeadership    VerbCategory = "leadership"
	CategoryAchievement   VerbCategory = "achievement"
	CategoryCreation      VerbCategory = "creation"
	CategoryImprovement   VerbCategory = "improvement"
	CategoryAnalysis      VerbCategory = "analysis"
	CategoryCommunication VerbCategory = "communication"
	CategoryTechnical     VerbCategory = "technical"
)

// ActionVerbCategories is the closed lexicon of strong action verbs grouped by
// semantic category. Scoring treats the union of all categories as the set of
// recognized verbs.
var ActionVerbCategories = map[VerbCategory][]string{
	CategoryLeadership:    {"Led", "Directed", "Managed", "Supervised", "Coordinated", "Orchestrated", "Spearheaded", "Championed"},
	CategoryAchievement:   {"Achieved", "Exceeded", "Surpassed", "Delivered", "Accomplished", "Attained", "Earned", "Won"},
	CategoryCreation:      {"Created", "Developed", "Designed", "Built", "Established", "Launched", "Initiated", "Pioneered"},
	CategoryImprovement:   {"Improved", "Enhanced", "Optimized", "Streamlined", "Revamped", "Transformed", "Modernized", "Upgraded"},
	CategoryAnalysis:      {"Analyzed", "Evaluated", "Assessed", "Researched", "Investigated", "Examined", "Identified", "Discovered"},
	CategoryCommunication: {"Presented", "Communicated", "Collaborated", "Negotiated", "Facilitated", "Articulated", "Advocated"},
	CategoryTechnical:     {"Implemented", "Engineered", "Programmed", "Configured", "Integrated", "Automated", "Deployed", "Architected"},
}

// weakPhrase maps one weak lead-in expression to its stronger replacements.
// Kept as an ordered slice so matching is deterministic.
type weakPhrase struct {
	phrase       string
	replacements []string
	anchored     *regexp.Regexp // matches the phrase at the start of a bullet
	anywhere     *regexp.Regexp // matches the phrase anywhere in a summary
}

var weakPhrases = []weakPhrase{
	{phrase: "worked on", replacements: []string{"Developed", "Implemented", "Built", "Created"}},
	{phrase: "helped with", replacements: []string{"Contributed to", "Supported", "Assisted in", "Collaborated on"}},
	{phrase: "was responsible for", replacements: []string{"Managed", "Led", "Oversaw", "Directed"}},
	{phrase: "did", replacements: []string{"Executed", "Performed", "Completed", "Delivered"}},
	{phrase: "made", replacements: []string{"Created", "Developed", "Produced", "Generated"}},
	{phrase: "used", replacements: []string{"Utilized", "Leveraged", "Applied", "Employed"}},
	{phrase: "got", replacements: []string{"Achieved", "Obtained", "Secured", "Earned"}},
	{phrase: "worked with", replacements: []string{"Collaborated with", "Partnered with", "Coordinated with"}},
	{phrase: "in charge of", replacements: []string{"Managed", "Directed", "Led", "Oversaw"}},
	{phrase: "dealt with", replacements: []string{"Handled", "Managed", "Addressed", "Resolved"}},
}

// RoleKeywords lists the fixed keyword vocabulary scored for each career role.
// Roles without an entry (e.g. "other") simply score zero keyword matches.
var RoleKeywords = map[types.CareerRole][]string{
	types.RoleDeveloper:  {"software development", "programming", "debugging", "code review", "agile", "version control", "APIs", "testing"},
	types.RoleDesigner:   {"UI/UX", "wireframing", "prototyping", "user research", "visual design", "design systems", "accessibility"},
	types.RoleManager:    {"project management", "team leadership", "stakeholder management", "budgeting", "strategic planning", "performance reviews"},
	types.RoleMarketing:  {"digital marketing", "SEO", "content strategy", "analytics", "campaign management", "brand awareness", "social media"},
	types.RoleSales:      {"revenue growth", "client acquisition", "pipeline management", "negotiation", "CRM", "account management", "B2B"},
	types.RoleAnalyst:    {"data analysis", "reporting", "visualization", "SQL", "business intelligence", "forecasting", "KPIs"},
	types.RoleEngineer:   {"system design", "infrastructure", "optimization", "troubleshooting", "documentation", "scalability"},
	types.RoleConsultant: {"client relations", "problem-solving", "recommendations", "presentations", "industry expertise", "strategy"},
}

var (
	allVerbs    []string
	allVerbsSet map[string]bool
)

func init() {
	allVerbsSet = make(map[string]bool)
	for _, verbs := range ActionVerbCategories {
		for _, v := range verbs {
			allVerbs = append(allVerbs, v)
			allVerbsSet[strings.ToLower(v)] = true
		}
	}
	for i := range weakPhrases {
		quoted := regexp.QuoteMeta(weakPhrases[i].phrase)
		weakPhrases[i].anchored = regexp.MustCompile(`(?i)^` + quoted + `\b`)
		weakPhrases[i].anywhere = regexp.MustCompile(`(?i)` + quoted)
	}
}

// AllActionVerbs returns the flattened lexicon across every category.
func AllActionVerbs() []string {
	return append([]string(nil), allVerbs...)
}

// IsActionVerb reports whether word (punctuation already stripped by the
// caller) is a recognized strong action verb, case-insensitively.
func IsActionVerb(word string) bool {
	return allVerbsSet[strings.ToLower(word)]
}

// KeywordsForRole returns the fixed keyword list for a role, or nil when the
// role has no vocabulary.
func KeywordsForRole(role types.CareerRole) []string {
	return RoleKeywords[role]
}
