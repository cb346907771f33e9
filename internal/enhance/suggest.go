package enhance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var metricPattern = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+ (users|customers|projects|team members)`)

// Suggestion length bounds for a single bullet or summary sentence.
const (
	minDetailLength  = 50
	maxConciseLength = 200
)

// GenerateSuggestions inspects one piece of text and returns improvement
// hints in a fixed order: metrics, leading action verb, length, then role
// keyword coverage. Each check emits at most one suggestion. Deterministic,
// unlike the enhancement transforms.
func GenerateSuggestions(text string, role types.CareerRole) []string {
	suggestions := []string{}
	lower := strings.ToLower(text)

	if !metricPattern.MatchString(text) {
		suggestions = append(suggestions, `Add quantifiable metrics (e.g., "Increased sales by 25%", "Managed team of 5")`)
	}

	hasActionVerb := false
	for _, v := range allVerbs {
		if strings.HasPrefix(lower, strings.ToLower(v)) {
			hasActionVerb = true
			break
		}
	}
	if !hasActionVerb {
		suggestions = append(suggestions, `Start with a strong action verb (e.g., "Led", "Developed", "Achieved")`)
	}

	if len(text) < minDetailLength {
		suggestions = append(suggestions, "Add more detail to strengthen this point")
	} else if len(text) > maxConciseLength {
		suggestions = append(suggestions, "Consider making this more concise for better readability")
	}

	if keywords := RoleKeywords[role]; len(keywords) > 0 {
		missing := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			if !strings.Contains(lower, strings.ToLower(kw)) {
				missing = append(missing, kw)
			}
		}
		// Only nudge when the text already touches the role's vocabulary.
		if len(missing) > 0 && len(missing) < len(keywords) {
			if len(missing) > 3 {
				missing = missing[:3]
			}
			suggestions = append(suggestions, fmt.Sprintf("Consider mentioning: %s", strings.Join(missing, ", ")))
		}
	}

	return suggestions
}
