package usecases_test

import (
	"context"
	"testing"
	"time"

	"studio-booking-service/internal/module/booking/mocks"
	"studio-booking-service/internal/module/booking/models/entity"
	"studio-booking-service/internal/module/booking/models/request"
	"studio-booking-service/internal/module/booking/usecases"
	"studio-booking-service/internal/pkg/errors"
	log_internal "studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	p        *capturingPublisher
)

type capturingPublisher struct {
	published map[string][]*message.Message
}

// Close implements message.Publisher.
func (m *capturingPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	if m.published == nil {
		m.published = map[string][]*message.Message{}
	}
	m.published[topic] = append(m.published[topic], messages...)
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &capturingPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	uc = usecases.New(repoMock, log_internal.GetLogger(), p)
}

func teardown() {
	repoMock = nil
	p = nil
	uc = nil
}

func createPayload() *request.CreateBooking {
	return &request.CreateBooking{
		SessionID:   "sess-1",
		ClientName:  "Ana",
		ClientPhone: "555-1234",
		ClientEmail: "ana@example.com",
		PackID:      7,
		PackName:    "Wedding Premium",
		Events: []request.BookingEvent{
			{
				EventName: "Ana & Ben",
				EventType: "wedding",
				EventDate: "2026-10-03",
				TimeSlot:  "afternoon",
				Location:  "Lakeside",
			},
		},
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts the booking and announces it", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingBySessionID", ctx, "sess-1").Return(entity.Booking{}, nil)
		repoMock.On("InsertBooking", ctx, mock.Anything, mock.Anything).Return(nil)

		created, err := uc.CreateBooking(ctx, createPayload())

		assert.NoError(t, err)
		assert.NotEmpty(t, created.BookingID)
		assert.Len(t, p.published[messagestream.TopicBookingCreated], 1)
	})

	t.Run("legacy top-level fields mirror the first event when absent", func(t *testing.T) {
		setup()
		defer teardown()

		var inserted entity.Booking
		repoMock.On("FindBookingBySessionID", ctx, "sess-1").Return(entity.Booking{}, nil)
		repoMock.On("InsertBooking", ctx, mock.MatchedBy(func(booking entity.Booking) bool {
			inserted = booking
			return true
		}), mock.Anything).Return(nil)

		_, err := uc.CreateBooking(ctx, createPayload())

		assert.NoError(t, err)
		assert.Equal(t, "wedding", inserted.EventType)
		assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), inserted.RequestedDate)
		assert.Equal(t, "afternoon", inserted.TimeSlot)
		assert.Equal(t, "Lakeside", inserted.Location)
	})

	t.Run("explicit legacy fields win over the first event", func(t *testing.T) {
		setup()
		defer teardown()

		payload := createPayload()
		payload.EventType = "portrait"
		payload.RequestedDate = "2026-11-20"
		payload.TimeSlot = "morning"

		var inserted entity.Booking
		repoMock.On("FindBookingBySessionID", ctx, "sess-1").Return(entity.Booking{}, nil)
		repoMock.On("InsertBooking", ctx, mock.MatchedBy(func(booking entity.Booking) bool {
			inserted = booking
			return true
		}), mock.Anything).Return(nil)

		_, err := uc.CreateBooking(ctx, payload)

		assert.NoError(t, err)
		assert.Equal(t, "portrait", inserted.EventType)
		assert.Equal(t, time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), inserted.RequestedDate)
		assert.Equal(t, "morning", inserted.TimeSlot)
	})

	t.Run("second booking for the same session conflicts", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindBookingBySessionID", ctx, "sess-1").Return(entity.Booking{ID: uuid.New()}, nil)

		_, err := uc.CreateBooking(ctx, createPayload())

		assert.Error(t, err)
		assert.Equal(t, 409, errors.HttpCode(err))
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything, mock.Anything)
		assert.Empty(t, p.published[messagestream.TopicBookingCreated])
	})

	t.Run("bad event date is rejected before the insert", func(t *testing.T) {
		setup()
		defer teardown()

		payload := createPayload()
		payload.Events[0].EventDate = "03/10/2026"

		repoMock.On("FindBookingBySessionID", ctx, "sess-1").Return(entity.Booking{}, nil)

		_, err := uc.CreateBooking(ctx, payload)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
		repoMock.AssertNotCalled(t, "InsertBooking", ctx, mock.Anything, mock.Anything)
	})
}
