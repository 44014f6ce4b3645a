// Package permission decides which staff role may enter which area of the
// application, using a casbin RBAC model with role inheritance.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// Area is a group of routes guarded by one gate.
type Area string

const (
	AreaTickets   Area = "tickets"
	AreaAdmin     Area = "admin"
	AreaUserAdmin Area = "user_admin"
)

const actionAccess = "access"

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an in-memory enforcer loaded with the built-in role
// hierarchy and area policies.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.loadDefaults(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) loadDefaults() error {
	// each role inherits everything the role below it may do
	inheritance := [][]string{
		{string(user.RoleSuperAdmin), string(user.RoleAdmin)},
		{string(user.RoleAdmin), string(user.RoleStaff)},
	}
	for _, rule := range inheritance {
		if _, err := e.enforcer.AddGroupingPolicy(rule); err != nil {
			return fmt.Errorf("failed to add role inheritance %v: %w", rule, err)
		}
	}

	policies := [][]string{
		{string(user.RoleStaff), string(AreaTickets), actionAccess},
		{string(user.RoleAdmin), string(AreaAdmin), actionAccess},
		{string(user.RoleSuperAdmin), string(AreaUserAdmin), actionAccess},
	}
	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"area", policy[1])
			return fmt.Errorf("failed to add policy %v: %w", policy, err)
		}
	}
	return nil
}

// CanAccess reports whether role may enter area.
func (e *Enforcer) CanAccess(role user.Role, area Area) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(string(role), string(area), actionAccess)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "area", area)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// RolesFor lists the roles that may enter area, for diagnostics.
func (e *Enforcer) RolesFor(area Area) []user.Role {
	var roles []user.Role
	for _, r := range user.Roles() {
		if ok, err := e.CanAccess(r, area); err == nil && ok {
			roles = append(roles, r)
		}
	}
	return roles
}
