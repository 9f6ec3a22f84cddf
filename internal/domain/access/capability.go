package access

// Capability is what a protected operation requires of the caller within
// one restaurant.
type Capability int

const (
	// CapabilityMember is any manager row for (restaurant, user).
	CapabilityMember Capability = iota + 1
	// CapabilitySuperAdmin is required for restaurant lifecycle and staff changes.
	CapabilitySuperAdmin
	// CapabilityManageMenu gates writes to menu, tables and QR codes. It is
	// granted independently of role.
	CapabilityManageMenu
)

func (c Capability) String() string {
	switch c {
	case CapabilityMember:
		return "member"
	case CapabilitySuperAdmin:
		return "super_admin"
	case CapabilityManageMenu:
		return "manage_menu"
	default:
		return "unknown"
	}
}
