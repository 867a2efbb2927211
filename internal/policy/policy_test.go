package policy

import (
	"testing"

	"studentregistry/internal/models"
)

func TestAllowed_Table(t *testing.T) {
	tests := []struct {
		name   string
		role   models.Role
		action Action
		want   bool
	}{
		{"admin lists", models.RoleAdmin, ActionListStudents, true},
		{"teacher lists", models.RoleTeacher, ActionListStudents, true},
		{"student lists", models.RoleStudent, ActionListStudents, true},
		{"student reads", models.RoleStudent, ActionReadStudent, true},
		{"teacher creates", models.RoleTeacher, ActionCreateStudent, true},
		{"student creates denied", models.RoleStudent, ActionCreateStudent, false},
		{"teacher updates", models.RoleTeacher, ActionUpdateStudent, true},
		{"student updates denied", models.RoleStudent, ActionUpdateStudent, false},
		{"admin deletes", models.RoleAdmin, ActionDeleteStudent, true},
		{"teacher deletes denied", models.RoleTeacher, ActionDeleteStudent, false},
		{"student deletes denied", models.RoleStudent, ActionDeleteStudent, false},
		{"admin reads audit", models.RoleAdmin, ActionReadAudit, true},
		{"teacher reads audit denied", models.RoleTeacher, ActionReadAudit, false},
		{"unknown role denied", models.Role("root"), ActionListStudents, false},
		{"unknown action denied", models.RoleAdmin, Action("students:truncate"), false},
		{"empty role denied", models.Role(""), ActionReadStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.action); got != tt.want {
				t.Fatalf("Allowed(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}
