package handler_test

import (
	"context"
	"testing"

	"studio-booking-service/internal/module/lead/handler"
	"studio-booking-service/internal/module/lead/mocks"
	"studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/lead/models/response"
	log_internal "studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.LeadHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
	p             *mockPublisher
)

type mockPublisher struct {
	published map[string][]*message.Message
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	if m.published == nil {
		m.published = map[string][]*message.Message{}
	}
	m.published[topic] = append(m.published[topic], messages...)
	return nil
}

func NewMockPublisher() *mockPublisher {
	return &mockPublisher{}
}

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.LeadHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func TestTrack(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.TrackLead{
			SessionID: "sess-1",
			EventName: "Ana & Ben",
			EventType: "wedding",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/track")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("session_id", "sess-1")

		// mock usecase
		ucm.On("TrackLead", ctx.UserContext(), &payload).Return(nil)

		// test
		err := h.Track(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("a failed publish still answers success", func(t *testing.T) {
		// mock data
		payload := request.TrackLead{
			SessionID: "sess-1",
			EventName: "Ana & Ben",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/track")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("session_id", "sess-1")

		// mock usecase
		ucm.On("TrackLead", ctx.UserContext(), &payload).Return(assert.AnError)

		// test
		err := h.Track(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestConsumeLeadTrackingQueue(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.TrackLead{
			SessionID: "sess-1",
			EventName: "Ana & Ben",
		}

		jsonData, _ := json.Marshal(payload)

		msg := message.NewMessage("123", jsonData)

		// mock usecase
		ucm.On("ApplyTracking", ctx, &payload).Return(nil)

		// test
		err := h.ConsumeLeadTrackingQueue(msg)

		// assertion
		assert.NoError(t, err)
	})

	t.Run("failure routes to the lead tracking poison queue", func(t *testing.T) {
		// mock data
		payload := request.TrackLead{
			SessionID: "sess-2",
		}

		jsonData, _ := json.Marshal(payload)

		msg := message.NewMessage("456", jsonData)

		// mock usecase
		ucm.On("ApplyTracking", ctx, &payload).Return(assert.AnError)

		// test
		err := h.ConsumeLeadTrackingQueue(msg)

		// assertion
		assert.Error(t, err)
		assert.Len(t, p.published[messagestream.TopicLeadTrackingPoisoned], 1)
		assert.Empty(t, p.published[messagestream.TopicBookingCreatedPoisoned])
	})
}

func TestConsumeBookingCreatedQueue(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.BookingCreated{
			SessionID: "sess-1",
			BookingID: "b0b5c6ce-0000-0000-0000-000000000000",
		}

		jsonData, _ := json.Marshal(payload)

		msg := message.NewMessage("123", jsonData)

		// mock usecase
		ucm.On("MarkLeadConverted", ctx, &payload).Return(nil)

		// test
		err := h.ConsumeBookingCreatedQueue(msg)

		// assertion
		assert.NoError(t, err)
	})

	t.Run("failure routes to the booking created poison queue", func(t *testing.T) {
		// mock data
		payload := request.BookingCreated{
			SessionID: "sess-2",
			BookingID: "b0b5c6ce-0000-0000-0000-000000000001",
		}

		jsonData, _ := json.Marshal(payload)

		msg := message.NewMessage("456", jsonData)

		// mock usecase
		ucm.On("MarkLeadConverted", ctx, &payload).Return(assert.AnError)

		// test
		err := h.ConsumeBookingCreatedQueue(msg)

		// assertion
		assert.Error(t, err)
		assert.Len(t, p.published[messagestream.TopicBookingCreatedPoisoned], 1)
		assert.Empty(t, p.published[messagestream.TopicLeadTrackingPoisoned])
	})
}

func TestShowLeads(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/private/leads?status=in_progress")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("staff_id", "staff-1")

		// mock usecase
		ucm.On("ShowLeads", ctx.UserContext(), "in_progress").Return([]response.Lead{}, nil)

		// test
		err := h.ShowLeads(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestSetLeadAbandoned(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.LeadAbandonment{
			SessionID: "sess-1",
		}

		// mock usecase
		ucm.On("MarkLeadAbandoned", ctx, &payload).Return(nil)
		asyncTask := asynq.NewTask("lead:mark_abandoned", []byte(`{"session_id":"sess-1"}`))

		// test
		err := h.SetLeadAbandoned(ctx, asyncTask)

		// assertion
		assert.NoError(t, err)
	})
}
