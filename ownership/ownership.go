// Package ownership decides who may create, modify and list boarding
// listings. The rules live here in one place instead of being scattered
// through the controllers.
package ownership

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Role is the closed set of principal roles carried in auth tokens.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleStudent         Role = "student"
	RoleServiceProvider Role = "service_provider"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleServiceProvider:
		return true
	}
	return false
}

// Principal is the authenticated caller for the lifetime of one request.
type Principal struct {
	ID   string
	Role Role
}

// Owner is the ownership stamp on a listing. The zero value is the legacy
// (unowned) variant; Own builds the owned variant. ID and Type are set
// together or not at all.
type Owner struct {
	ID   string
	Type Role
}

func Own(role Role, id string) Owner {
	return Owner{ID: id, Type: role}
}

// IsLegacy reports whether the record predates ownership tracking. A record
// with only one of the two fields set is malformed and is treated as legacy,
// which restricts its mutation to admins.
func (o Owner) IsLegacy() bool {
	return o.ID == "" || o.Type == ""
}

var (
	// ErrNoPrincipal is returned when the auth context carries no usable role.
	ErrNoPrincipal = errors.New("no authenticated principal")
	// ErrLegacyRecord is returned when a non-admin touches a legacy record.
	ErrLegacyRecord = errors.New("only admin can modify legacy records")
	// ErrNotOwner is returned when the principal does not own the record.
	ErrNotOwner = errors.New("principal does not own this record")
)

// StampForCreate derives the ownership fields for a record the principal is
// creating. An unknown or empty role fails before anything is persisted.
func StampForCreate(p Principal) (Owner, error) {
	if !p.Role.Valid() || p.ID == "" {
		return Owner{}, ErrNoPrincipal
	}
	return Own(p.Role, p.ID), nil
}

// CanMutate applies the delete/update rule in fixed precedence order:
// admin always wins, legacy records are admin-only, students and service
// providers must match both owner id and owner type exactly.
func CanMutate(p Principal, o Owner) error {
	if p.Role == RoleAdmin {
		return nil
	}
	if o.IsLegacy() {
		return ErrLegacyRecord
	}
	if (p.Role == RoleStudent || p.Role == RoleServiceProvider) &&
		o.Type == p.Role && o.ID == p.ID {
		return nil
	}
	return ErrNotOwner
}

// MineMatch reports whether a record belongs in the principal's "my listings"
// view. Admins see their own records plus every legacy record; students and
// service providers see exact matches only.
func MineMatch(p Principal, o Owner) bool {
	if p.Role == RoleAdmin {
		return o.IsLegacy() || (o.Type == RoleAdmin && o.ID == p.ID)
	}
	return !o.IsLegacy() && o.Type == p.Role && o.ID == p.ID
}

// MineFilter is the Mongo form of MineMatch. Legacy records are matched by a
// missing-or-empty ownerId, which is how they were written.
func MineFilter(p Principal) bson.M {
	if p.Role == RoleAdmin {
		return bson.M{"$or": bson.A{
			bson.M{"ownerType": string(RoleAdmin), "ownerId": p.ID},
			bson.M{"ownerId": bson.M{"$in": bson.A{nil, ""}}},
		}}
	}
	return bson.M{"ownerId": p.ID, "ownerType": string(p.Role)}
}
