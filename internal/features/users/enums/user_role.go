package users_enums

type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleProjectManager UserRole = "project_manager"
	UserRoleEmployee       UserRole = "employee"
	UserRoleSales          UserRole = "sales"
	UserRoleRecruitment    UserRole = "recruitment"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleProjectManager, UserRoleEmployee, UserRoleSales, UserRoleRecruitment:
		return true
	default:
		return false
	}
}
