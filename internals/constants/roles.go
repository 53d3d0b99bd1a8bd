package constants

import "fmt"

// Portal roles carried in the access token.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
	RolePartner = "partner"
	RolePolo    = "polo"
)

const (
	ErrOnlyAdminsCanAccess  = "❌ Only admins may access %s."
	ErrOnlyMembersCanAccess = "❌ Only platform members may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleStudent,
		RolePartner,
		RolePolo,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
