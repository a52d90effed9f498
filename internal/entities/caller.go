package entities

import "github.com/google/uuid"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Caller is the authenticated identity a request is executed on behalf of.
type Caller struct {
	ID   uuid.UUID
	Role Role
}

func (c Caller) Elevated() bool {
	return c.Role == RoleAdmin
}

func (c Caller) Owns(o Order) bool {
	return c.ID == o.UserID
}

func (c Caller) CanAccessOrder(o Order) bool {
	return c.Elevated() || c.Owns(o)
}

// CanCancelOrder reports whether the caller owns the order.
func (c Caller) CanCancelOrder(o Order) bool {
	return c.Owns(o)
}

func (c Caller) CanMutateStatus() bool {
	return c.Elevated()
}

func (c Caller) CanManageCatalog() bool {
	return c.Elevated()
}
