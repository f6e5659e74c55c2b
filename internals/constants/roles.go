package constants

import "fmt"

// Role yang dikenal di token
const (
	RoleOwner     = "owner"
	RoleAdmin     = "admin"
	RoleTreasurer = "treasurer"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyTreasurerCanAccess = "❌ Hanya bendahara atau admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess    = "❌ Hanya owner yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTreasurer(feature string) string {
	return fmt.Sprintf(ErrOnlyTreasurerCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}
