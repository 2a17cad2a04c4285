package service

import (
	"context"
)

type ctxKey string

const ctxRoleKey ctxKey = "role"

type Role string

const (
	RoleCustomer Role = "ROLE_CUSTOMER"
	RoleAdmin    Role = "ROLE_ADMIN"
)

func WithRole(ctx context.Context, r Role) context.Context {
	return context.WithValue(ctx, ctxRoleKey, r)
}

func RoleFromContext(ctx context.Context) (Role, bool) {
	v, ok := ctx.Value(ctxRoleKey).(Role)
	return v, ok
}

// AccessPolicy решает, можно ли изменять каталог. По умолчанию политика
// разрешающая; строгая проверка роли включается конфигом (ADMIN_ENFORCED).
type AccessPolicy interface {
	CanManageCatalog(ctx context.Context) bool
}

type PermissivePolicy struct{}

func (PermissivePolicy) CanManageCatalog(context.Context) bool { return true }

type AdminOnlyPolicy struct{}

func (AdminOnlyPolicy) CanManageCatalog(ctx context.Context) bool {
	role, ok := RoleFromContext(ctx)
	return ok && role == RoleAdmin
}
