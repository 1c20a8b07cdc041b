package middleware

import (
	"fmt"
	"strings"

	"studio-booking-service/internal/module/wizard/repositories"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

// ResolveVisitor maps the opaque visitor token onto the session id the core
// works with. Wizard and tracking routes never read ambient identity.
func (m *Middleware) ResolveVisitor(ctx *fiber.Ctx) error {
	token := ctx.Get("X-Visitor-Token")
	if token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get visitor token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get visitor token from header"))
	}

	resp, err := m.Repo.ResolveVisitorToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error resolve visitor token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error resolve visitor token"))
	}

	ctx.Locals("session_id", resp.SessionID)

	return ctx.Next()
}

// ValidateStaff guards the private staff routes.
func (m *Middleware) ValidateStaff(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get staff token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get staff token from header"))
	}

	token := strings.TrimPrefix(auth, "Bearer ")

	resp, err := m.Repo.ValidateStaffToken(ctx.UserContext(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate staff token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate staff token"))
	}

	ctx.Locals("staff_id", resp.StaffID)
	ctx.Locals("staff_email", resp.Email)

	return ctx.Next()
}
