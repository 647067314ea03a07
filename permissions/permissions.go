package permissions

import "restaurant-api/models"

// Role is the authorization class resolved for a request.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCustomer  Role = "customer" // any authenticated user
	RoleManager   Role = "manager"
	RoleDelivery  Role = "delivery"
)

type Resource string

const (
	ResourceMenu   Resource = "menu" // menu items and categories
	ResourceCart   Resource = "cart"
	ResourceOrder  Resource = "order"
	ResourceRoster Resource = "roster" // staff group membership lists
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// rule grants a single (role, resource, action) combination.
type rule struct {
	Role     Role
	Resource Resource
	Action   Action
}

// policy is the authoritative role table. Anything not listed is denied.
// Object-level narrowing (ownership, crew assignment) happens in handlers
// on top of these grants.
var policy = []rule{
	// Menu and categories are world-readable; only managers mutate them.
	{RoleAnonymous, ResourceMenu, ActionRead},
	{RoleCustomer, ResourceMenu, ActionRead},
	{RoleDelivery, ResourceMenu, ActionRead},
	{RoleManager, ResourceMenu, ActionRead},
	{RoleManager, ResourceMenu, ActionCreate},
	{RoleManager, ResourceMenu, ActionUpdate},
	{RoleManager, ResourceMenu, ActionDelete},

	// Carts are always self-scoped; any authenticated identity has one.
	{RoleCustomer, ResourceCart, ActionRead},
	{RoleCustomer, ResourceCart, ActionCreate},
	{RoleCustomer, ResourceCart, ActionDelete},

	// Orders: everyone authenticated may list and check out; status
	// updates are staff-only and deletion is manager-only.
	{RoleCustomer, ResourceOrder, ActionRead},
	{RoleCustomer, ResourceOrder, ActionCreate},
	{RoleDelivery, ResourceOrder, ActionUpdate},
	{RoleManager, ResourceOrder, ActionUpdate},
	{RoleManager, ResourceOrder, ActionDelete},

	// Staff roster management is manager-only.
	{RoleManager, ResourceRoster, ActionRead},
	{RoleManager, ResourceRoster, ActionCreate},
	{RoleManager, ResourceRoster, ActionDelete},
}

// Build a lookup map for O(1) checks.
var policyIndex = func() map[rule]bool {
	m := make(map[rule]bool)
	for _, r := range policy {
		m[r] = true
	}
	return m
}()

// Can reports whether any of the caller's roles permits action on resource.
func Can(roles []Role, resource Resource, action Action) bool {
	for _, role := range roles {
		if policyIndex[rule{role, resource, action}] {
			return true
		}
	}
	return false
}

// RolesOf resolves the roles a user holds. A nil user is anonymous.
// An identity may hold manager and delivery simultaneously; nothing
// guards against dual membership and manager grants win where they overlap.
func RolesOf(u *models.User) []Role {
	if u == nil {
		return []Role{RoleAnonymous}
	}
	roles := []Role{RoleCustomer}
	if u.IsManager() {
		roles = append(roles, RoleManager)
	}
	if u.IsDeliveryCrew() {
		roles = append(roles, RoleDelivery)
	}
	return roles
}

// CanViewOrder allows the order's owner, any manager, or the assigned
// delivery crew member.
func CanViewOrder(u *models.User, o *models.Order) bool {
	if u == nil {
		return false
	}
	if u.IsManager() || o.UserID == u.ID {
		return true
	}
	return o.DeliveryCrewID != nil && *o.DeliveryCrewID == u.ID
}

// CanToggleOrderStatus allows managers on any order and delivery crew on
// orders assigned to them.
func CanToggleOrderStatus(u *models.User, o *models.Order) bool {
	if u == nil {
		return false
	}
	if u.IsManager() {
		return true
	}
	return u.IsDeliveryCrew() && o.DeliveryCrewID != nil && *o.DeliveryCrewID == u.ID
}
