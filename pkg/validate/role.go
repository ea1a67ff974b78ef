package validate

import "github.com/talmaprime/teaops/internal/domain"

var knownRoles = map[domain.Role]struct{}{
	domain.RoleAdmin:     {},
	domain.RoleMD:        {},
	domain.RoleManager:   {},
	domain.RoleDataEntry: {},
}

func IsRole(s string) bool {
	_, ok := knownRoles[domain.Role(s)]
	return ok
}
