// Package router maps a task description to the role that should pick it up.
//
// Keyword sets are checked in a fixed order and the first set with a match decides the role,
// so "fix the bug in the new feature" goes to Developer, not QA.
package router

import (
	"strings"

	"github.com/marts9182/Rooster-AI-Project-Management/pkg/models"
)

// KeywordSet identifies one rule of the classifier.
type KeywordSet int

// Keyword sets in evaluation order.
const (
	SetDevelopment KeywordSet = iota
	SetQuality
	SetAccessibility
	SetArchitecture
	SetProduct
	SetDocumentation
)

// Order returns the keyword sets in the order Classify checks them.
func Order() []KeywordSet {
	return []KeywordSet{SetDevelopment, SetQuality, SetAccessibility, SetArchitecture, SetProduct, SetDocumentation}
}

// Keywords returns the lower-case terms of the set.
func (k KeywordSet) Keywords() []string {
	switch k {
	case SetDevelopment:
		return []string{"feature", "implement", "develop", "code"}
	case SetQuality:
		return []string{"test", "qa", "quality", "bug"}
	case SetAccessibility:
		return []string{"accessibility", "a11y", "wcag", "screen reader"}
	case SetArchitecture:
		return []string{"architecture", "design", "technical lead"}
	case SetProduct:
		return []string{"requirement", "story", "user", "product"}
	case SetDocumentation:
		return []string{"simple", "documentation", "docs", "readme"}
	default:
		return nil
	}
}

// Role returns the role a match on the set routes to.
func (k KeywordSet) Role() models.Role {
	switch k {
	case SetDevelopment:
		return models.RoleDeveloper
	case SetQuality:
		return models.RoleQA
	case SetAccessibility:
		return models.RoleAccessibility
	case SetArchitecture:
		return models.RoleTechLead
	case SetProduct:
		return models.RoleProductOwner
	case SetDocumentation:
		return models.RoleIntern
	default:
		return DefaultRole
	}
}

// DefaultRole is used when no keyword set matches.
const DefaultRole = models.RoleDeveloper

// Match returns the first keyword set whose terms occur in description, and false when none do.
// Matching is case-insensitive substring containment.
func Match(description string) (KeywordSet, string, bool) {
	lower := strings.ToLower(description)
	for _, set := range Order() {
		for _, kw := range set.Keywords() {
			if strings.Contains(lower, kw) {
				return set, kw, true
			}
		}
	}
	return 0, "", false
}

// Classify returns the role for description.
func Classify(description string) models.Role {
	set, _, ok := Match(description)
	if !ok {
		return DefaultRole
	}
	return set.Role()
}
