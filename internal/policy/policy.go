// Package policy holds the static role→action authorization table.
// Every protected route consults Allowed instead of comparing role
// literals inline, so the whole access model is readable in one place.
package policy

import "studentregistry/internal/models"

// Action names a protected operation.
type Action string

const (
	ActionListStudents  Action = "students:list"
	ActionReadStudent   Action = "students:read"
	ActionCreateStudent Action = "students:create"
	ActionUpdateStudent Action = "students:update"
	ActionDeleteStudent Action = "students:delete"
	ActionReadAudit     Action = "audit:read"
)

// table maps each action to the set of roles permitted to perform it.
var table = map[Action]map[models.Role]bool{
	ActionListStudents:  {models.RoleAdmin: true, models.RoleTeacher: true, models.RoleStudent: true},
	ActionReadStudent:   {models.RoleAdmin: true, models.RoleTeacher: true, models.RoleStudent: true},
	ActionCreateStudent: {models.RoleAdmin: true, models.RoleTeacher: true},
	ActionUpdateStudent: {models.RoleAdmin: true, models.RoleTeacher: true},
	ActionDeleteStudent: {models.RoleAdmin: true},
	ActionReadAudit:     {models.RoleAdmin: true},
}

// Allowed reports whether role may perform action. Unknown roles and
// unknown actions are denied. Pure and stateless.
func Allowed(role models.Role, action Action) bool {
	return table[action][role]
}
