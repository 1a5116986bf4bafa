// Package permission holds the static role rules and the owner-or-admin
// predicate shared by every mutating handler.
package permission

import "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"

// Role levels, higher is more privileged
const (
	RoleLevelAdmin   = 80
	RoleLevelTutor   = 50
	RoleLevelStudent = 10
	RoleLevelUnknown = 0
)

var RoleLevelMap = map[string]int{
	user.RoleAdmin:   RoleLevelAdmin,
	user.RoleTutor:   RoleLevelTutor,
	user.RoleStudent: RoleLevelStudent,
}

var landingPaths = map[string]string{
	user.RoleStudent: "/student",
	user.RoleTutor:   "/tutor",
	user.RoleAdmin:   "/admin",
}

// GetRoleLevel returns RoleLevelUnknown for roles outside the map
func GetRoleLevel(role string) int {
	if level, ok := RoleLevelMap[role]; ok {
		return level
	}
	return RoleLevelUnknown
}

// HasRequiredRole reports whether actualRole is at least requiredRole.
// Unknown roles never pass.
func HasRequiredRole(actualRole, requiredRole string) bool {
	level := GetRoleLevel(actualRole)
	return level > RoleLevelUnknown && level >= GetRoleLevel(requiredRole)
}

func IsValidRole(role string) bool {
	_, ok := RoleLevelMap[role]
	return ok
}

func IsAdmin(role string) bool {
	return role == user.RoleAdmin
}

// IsStaff tutors and admins
func IsStaff(role string) bool {
	return role == user.RoleTutor || role == user.RoleAdmin
}

// InRoles reports whether role is one of allowed
func InRoles(role string, allowed ...string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanMutate is the owner-or-admin rule
func CanMutate(requesterID uint, requesterRole string, ownerID uint) bool {
	if IsAdmin(requesterRole) {
		return true
	}
	return requesterID != 0 && requesterID == ownerID
}

// LandingPath is where the frontend sends a user of role after sign-in or a
// failed route guard
func LandingPath(role string) string {
	if path, ok := landingPaths[role]; ok {
		return path
	}
	return "/login"
}
