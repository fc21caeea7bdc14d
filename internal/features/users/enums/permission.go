package users_enums

type Permission string

const (
	PermissionManageUsers       Permission = "users:manage"
	PermissionManageSkills      Permission = "skills:manage"
	PermissionManageProjects    Permission = "projects:manage"
	PermissionManageAssignments Permission = "assignments:manage"
	PermissionManagePipeline    Permission = "pipeline:manage"

	// View other employees' skills and timesheets; everyone can view their own.
	PermissionViewAllEmployeeData Permission = "employees:view_all"
)

// rolePermissions is the single authorization table. Handlers check it at
// the boundary instead of comparing role strings inline.
var rolePermissions = map[UserRole][]Permission{
	UserRoleAdmin: {
		PermissionManageUsers,
		PermissionManageSkills,
		PermissionManageProjects,
		PermissionManageAssignments,
		PermissionManagePipeline,
		PermissionViewAllEmployeeData,
	},
	UserRoleProjectManager: {
		PermissionManageAssignments,
		PermissionViewAllEmployeeData,
	},
	UserRoleSales: {
		PermissionManagePipeline,
	},
	UserRoleEmployee:    {},
	UserRoleRecruitment: {},
}

func (r UserRole) HasPermission(permission Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == permission {
			return true
		}
	}

	return false
}
