package handler

import (
	"context"
	"fmt"

	"studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/lead/usecases"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/helpers"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type LeadHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// Track accepts a partial tracking patch from the wizard client. The patch
// is queued and the response never reflects downstream persistence: tracking
// is a side channel and must not block the visitor.
func (h *LeadHandler) Track(ctx *fiber.Ctx) error {
	var req request.TrackLead
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	req.SessionID = ctx.Locals("session_id").(string)

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	if err := h.Usecase.TrackLead(ctx.UserContext(), &req); err != nil {
		// swallowed: log and report success anyway
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error track lead: %v", err))
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "tracking accepted")
}

func (h *LeadHandler) ConsumeLeadTrackingQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.TrackLead
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, messagestream.TopicLeadTracking, messagestream.TopicLeadTrackingPoisoned, err)
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.ApplyTracking(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume lead tracking queue: %v", err))
		h.publishPoisoned(msg, messagestream.TopicLeadTracking, messagestream.TopicLeadTrackingPoisoned, err)
		return err
	}

	return nil
}

func (h *LeadHandler) ConsumeBookingCreatedQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.BookingCreated
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, messagestream.TopicBookingCreated, messagestream.TopicBookingCreatedPoisoned, err)
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.MarkLeadConverted(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume booking created queue: %v", err))
		h.publishPoisoned(msg, messagestream.TopicBookingCreated, messagestream.TopicBookingCreatedPoisoned, err)
		return err
	}

	return nil
}

func (h *LeadHandler) ShowLeads(ctx *fiber.Ctx) error {
	status := ctx.Query("status")

	resp, err := h.Usecase.ShowLeads(ctx.UserContext(), status)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show leads: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show leads")
}

func (h *LeadHandler) SetLeadAbandoned(ctx context.Context, t *asynq.Task) error {
	var req request.LeadAbandonment
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.MarkLeadAbandoned(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error set lead abandoned: %v", err))
		return err
	}

	return nil
}

func (h *LeadHandler) publishPoisoned(msg *message.Message, topicTarget string, poisonTopic string, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: topicTarget,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish(poisonTopic, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
