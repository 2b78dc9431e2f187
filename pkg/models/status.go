package models

import (
	"fmt"
	"strings"
)

// Status is a board lane. Values are the display labels, which is also how they are persisted.
type Status string

// Task statuses, in lane order.
const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusDone       Status = "Done"
)

// Lanes returns the statuses in board order.
func Lanes() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}
}

// Name returns the command-line name of the status (TODO, IN_PROGRESS, REVIEW, DONE).
func (s Status) Name() string {
	switch s {
	case StatusTodo:
		return "TODO"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusReview:
		return "REVIEW"
	case StatusDone:
		return "DONE"
	default:
		return strings.ToUpper(strings.ReplaceAll(string(s), " ", "_"))
	}
}

// Valid reports whether s is one of the four lanes.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// ParseStatus accepts either the command-line name (IN_PROGRESS) or the label (In Progress), case-insensitively.
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, s := range Lanes() {
		if strings.EqualFold(v, s.Name()) || strings.EqualFold(v, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want TODO, IN_PROGRESS, REVIEW or DONE)", v)
}

// Role is one of the fixed agent categories. Values are the display labels.
type Role string

// Agent roles.
const (
	RoleManager       Role = "Manager"
	RoleTechLead      Role = "Tech Lead"
	RoleDeveloper     Role = "Developer"
	RoleIntern        Role = "Intern"
	RoleQA            Role = "QA"
	RoleAccessibility Role = "Accessibility"
	RoleProductOwner  Role = "Product Owner"
)

// Roles returns every role in roster order.
func Roles() []Role {
	return []Role{RoleManager, RoleTechLead, RoleDeveloper, RoleIntern, RoleQA, RoleAccessibility, RoleProductOwner}
}

// Valid reports whether r is one of the seven roles.
func (r Role) Valid() bool {
	for _, known := range Roles() {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole matches a role label case-insensitively.
func ParseRole(v string) (Role, error) {
	v = strings.TrimSpace(v)
	for _, r := range Roles() {
		if strings.EqualFold(v, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", v)
}

// Default limits.
const (
	DefaultMessageListLimit = 100
	DefaultTaskPreviewChars = 60
)
