package browser

import "fmt"

// RoleSelector builds a Playwright role-engine selector for an element
// with the given accessible role and exact name.
func RoleSelector(role, name string) string {
	selector := fmt.Sprintf("role=%s", role)
	if name != "" {
		selector += fmt.Sprintf("[name=%q]", name)
	}
	return selector
}
