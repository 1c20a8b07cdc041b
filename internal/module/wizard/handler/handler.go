package handler

import (
	"fmt"

	"studio-booking-service/internal/module/wizard/models/request"
	"studio-booking-service/internal/module/wizard/usecases"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type WizardHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *WizardHandler) StartWizard(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.StartSession(ctx.UserContext(), sessionID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error start wizard: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success start wizard")
}

func (h *WizardHandler) SubmitEventDetails(ctx *fiber.Ctx) error {
	var req request.EventDetails
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("event name and a valid event date are required"))
	}

	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.SubmitEventDetails(ctx.UserContext(), sessionID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error submit event details: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success submit event details")
}

func (h *WizardHandler) ShowPackages(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.ListPackagesForSession(ctx.UserContext(), sessionID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show wizard packages: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show wizard packages")
}

func (h *WizardHandler) SelectPackage(ctx *fiber.Ctx) error {
	var req request.SelectPackage
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.SelectPackage(ctx.UserContext(), sessionID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error select package: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success select package")
}

func (h *WizardHandler) UpdateContact(ctx *fiber.Ctx) error {
	var req request.ContactInfo
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.UpdateContact(ctx.UserContext(), sessionID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update contact: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update contact")
}

func (h *WizardHandler) SubmitWizard(ctx *fiber.Ctx) error {
	sessionID := ctx.Locals("session_id").(string)

	resp, err := h.Usecase.Submit(ctx.UserContext(), sessionID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error submit wizard: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success submit booking, we will contact you shortly")
}
