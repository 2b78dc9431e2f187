package workflow

import "github.com/marts9182/Rooster-AI-Project-Management/pkg/models"

// Perspective returns the agent's role-flavored take on a task.
// Roles outside the fixed set get a generic line.
func Perspective(agent models.Agent, task models.Task) string {
	name := agent.Name
	switch agent.Role {
	case models.RoleManager:
		return name + " reviews the task and considers resource allocation, timeline, and team capacity. They want to ensure the team has what they need to succeed."
	case models.RoleTechLead:
		return name + " analyzes the technical requirements and considers architecture implications. They're thinking about code quality, technical debt, and how this fits into the overall system."
	case models.RoleDeveloper:
		return name + " is excited to tackle the implementation. They're already thinking about the best approach, potential challenges, and how to write clean, maintainable code."
	case models.RoleIntern:
		return name + " is enthusiastic about contributing. They see this as a learning opportunity and are ready to ask questions and research the best approaches."
	case models.RoleQA:
		return name + " is already thinking about test cases and edge cases. They want to ensure this feature is thoroughly tested and works correctly in all scenarios."
	case models.RoleAccessibility:
		return name + " reviews the requirements through an accessibility lens. They're checking if this will work for users with disabilities and if it meets WCAG standards."
	case models.RoleProductOwner:
		return name + " evaluates the business value and user impact. They're ensuring this aligns with user needs and product goals."
	default:
		return name + " reviews the task."
	}
}
