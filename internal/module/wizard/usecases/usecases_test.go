package usecases_test

import (
	"context"
	"testing"
	"time"

	"studio-booking-service/config"
	bookingmocks "studio-booking-service/internal/module/booking/mocks"
	bookingrequest "studio-booking-service/internal/module/booking/models/request"
	bookingresponse "studio-booking-service/internal/module/booking/models/response"
	catalogmocks "studio-booking-service/internal/module/catalog/mocks"
	catalogresponse "studio-booking-service/internal/module/catalog/models/response"
	"studio-booking-service/internal/module/wizard/mocks"
	"studio-booking-service/internal/module/wizard/models/entity"
	"studio-booking-service/internal/module/wizard/models/request"
	"studio-booking-service/internal/module/wizard/usecases"
	"studio-booking-service/internal/pkg/errors"
	log_internal "studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	catalogMock *catalogmocks.Usecase
	bookingMock *bookingmocks.Usecase
	p           *capturingPublisher
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

func (m *capturingPublisher) tracked() []*message.Message {
	return m.published[messagestream.TopicLeadTracking]
}

func setup() {
	repoMock = new(mocks.Repositories)
	catalogMock = new(catalogmocks.Usecase)
	bookingMock = new(bookingmocks.Usecase)
	p = &capturingPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	cfg := &config.WizardConfig{
		SessionTTL:      24 * time.Hour,
		AbandonAfter:    48 * time.Hour,
		CatalogCacheTTL: 10 * time.Minute,
	}
	uc = usecases.New(repoMock, log_internal.GetLogger(), p, catalogMock, bookingMock, cfg)
}

func teardown() {
	repoMock = nil
	catalogMock = nil
	bookingMock = nil
	p = nil
	uc = nil
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 14).Format("2006-01-02")
}

func sessionOnContactStep() *entity.Session {
	session := entity.NewSession("sess-1")
	session.Step = entity.StepContact
	session.Event = entity.EventDetail{
		EventName: "Ana & Ben",
		EventType: "wedding",
		EventDate: futureDate(),
		TimeSlot:  "afternoon",
		Location:  "Lakeside",
	}
	session.SelectedPackID = 7
	session.PackName = "Wedding Premium"
	session.Contact = entity.ContactInfo{
		ClientName:  "Ana",
		ClientPhone: "555-1234",
		ClientEmail: "ana@example.com",
	}
	return session
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("first start creates the session, tracks the page view and schedules the follow-up", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(nil, errors.NotFound("session not found"))
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)
		repoMock.On("ScheduleAbandonmentCheck", ctx, "sess-1", 48*time.Hour).Return("task-1", nil)

		state, err := uc.StartSession(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, entity.StepEvent, state.Step)
		assert.Equal(t, entity.SubmitIdle, state.Submit)
		assert.Len(t, p.tracked(), 1)
		repoMock.AssertExpectations(t)
	})

	t.Run("a transient store failure surfaces instead of resetting progress", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(nil, errors.InternalServerError("error get wizard session"))

		_, err := uc.StartSession(ctx, "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 500, errors.HttpCode(err))
		assert.Empty(t, p.tracked())
		repoMock.AssertNotCalled(t, "SaveSession", ctx, mock.Anything)
		repoMock.AssertNotCalled(t, "ScheduleAbandonmentCheck", ctx, "sess-1", mock.Anything)
	})

	t.Run("restart resumes the existing state without a new lead", func(t *testing.T) {
		setup()
		defer teardown()

		existing := sessionOnContactStep()
		repoMock.On("GetSession", ctx, "sess-1").Return(existing, nil)

		state, err := uc.StartSession(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, entity.StepContact, state.Step)
		assert.Equal(t, int64(7), state.SelectedPackID)
		assert.Empty(t, p.tracked())
		repoMock.AssertNotCalled(t, "SaveSession", ctx, mock.Anything)
		repoMock.AssertNotCalled(t, "ScheduleAbandonmentCheck", ctx, "sess-1", mock.Anything)
	})
}

func TestSubmitEventDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("advances to the package step and tracks the event details", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)

		state, err := uc.SubmitEventDetails(ctx, "sess-1", &request.EventDetails{
			EventName: "Ana & Ben",
			EventType: "wedding",
			EventDate: futureDate(),
			TimeSlot:  "afternoon",
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.StepPackage, state.Step)
		assert.Len(t, p.tracked(), 1)
	})

	t.Run("empty event type defaults to other", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)

		state, err := uc.SubmitEventDetails(ctx, "sess-1", &request.EventDetails{
			EventName: "Team offsite",
			EventDate: futureDate(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "other", state.Event.EventType)
	})

	t.Run("an event dated today is accepted regardless of timezone", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)

		state, err := uc.SubmitEventDetails(ctx, "sess-1", &request.EventDetails{
			EventName: "Ana & Ben",
			EventType: "wedding",
			EventDate: time.Now().Format("2006-01-02"),
		})

		assert.NoError(t, err)
		assert.Equal(t, entity.StepPackage, state.Step)
	})

	t.Run("past event date is rejected and nothing is tracked or saved", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)

		_, err := uc.SubmitEventDetails(ctx, "sess-1", &request.EventDetails{
			EventName: "Ana & Ben",
			EventType: "wedding",
			EventDate: "2020-01-01",
		})

		assert.Error(t, err)
		assert.Equal(t, 422, errors.HttpCode(err))
		assert.Empty(t, p.tracked())
		repoMock.AssertNotCalled(t, "SaveSession", ctx, mock.Anything)
	})

	t.Run("unknown event type is rejected", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)

		_, err := uc.SubmitEventDetails(ctx, "sess-1", &request.EventDetails{
			EventName: "Ana & Ben",
			EventType: "banquet",
			EventDate: futureDate(),
		})

		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
	})
}

func TestListPackagesForSession(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the event step to be done first", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetSession", ctx, "sess-1").Return(entity.NewSession("sess-1"), nil)

		_, err := uc.ListPackagesForSession(ctx, "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 422, errors.HttpCode(err))
		catalogMock.AssertNotCalled(t, "ListPackages", ctx, mock.Anything)
	})

	t.Run("returns matches and records the shown names on the lead", func(t *testing.T) {
		setup()
		defer teardown()

		session := entity.NewSession("sess-1")
		session.Step = entity.StepPackage
		session.Event = entity.EventDetail{EventName: "Ana & Ben", EventType: "wedding", EventDate: futureDate()}

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)
		catalogMock.On("ListPackages", ctx, "wedding").Return(catalogresponse.PackageList{
			Packages: []catalogresponse.Package{
				{ID: 1, Name: "Wedding Essential"},
				{ID: 7, Name: "Wedding Premium"},
			},
		}, nil)

		resp, err := uc.ListPackagesForSession(ctx, "sess-1")

		assert.NoError(t, err)
		assert.False(t, resp.Fallback)
		assert.Len(t, resp.Packages, 2)
		assert.Equal(t, []string{"Wedding Essential", "Wedding Premium"}, session.ViewedPackages)
		assert.Len(t, p.tracked(), 1)
	})
}

func TestSelectPackage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the package and moves to the contact step", func(t *testing.T) {
		setup()
		defer teardown()

		session := entity.NewSession("sess-1")
		session.Step = entity.StepPackage
		session.Event = entity.EventDetail{EventName: "Ana & Ben", EventType: "wedding", EventDate: futureDate()}

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)
		catalogMock.On("GetPackage", ctx, int64(7)).Return(catalogresponse.Package{ID: 7, Name: "Wedding Premium"}, nil)

		state, err := uc.SelectPackage(ctx, "sess-1", &request.SelectPackage{PackID: 7})

		assert.NoError(t, err)
		assert.Equal(t, entity.StepContact, state.Step)
		assert.Equal(t, "Wedding Premium", state.PackName)
		assert.Len(t, p.tracked(), 1)
	})

	t.Run("re-selecting on the contact step swaps the package without a transition", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)
		catalogMock.On("GetPackage", ctx, int64(2)).Return(catalogresponse.Package{ID: 2, Name: "Wedding Essential"}, nil)

		state, err := uc.SelectPackage(ctx, "sess-1", &request.SelectPackage{PackID: 2})

		assert.NoError(t, err)
		assert.Equal(t, entity.StepContact, state.Step)
		assert.Equal(t, int64(2), state.SelectedPackID)
	})

	t.Run("unknown package fails without touching the session", func(t *testing.T) {
		setup()
		defer teardown()

		session := entity.NewSession("sess-1")
		session.Step = entity.StepPackage

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		catalogMock.On("GetPackage", ctx, int64(99)).Return(catalogresponse.Package{}, errors.NotFound("package not found"))

		_, err := uc.SelectPackage(ctx, "sess-1", &request.SelectPackage{PackID: 99})

		assert.Error(t, err)
		repoMock.AssertNotCalled(t, "SaveSession", ctx, mock.Anything)
	})
}

func TestUpdateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("auto-track fires once when contact completes with a package", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		session.Contact = entity.ContactInfo{}
		session.ContactTracked = false

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)

		// partial contact: no fire yet
		_, err := uc.UpdateContact(ctx, "sess-1", &request.ContactInfo{ClientName: "Ana"})
		assert.NoError(t, err)
		assert.Empty(t, p.tracked())

		// name and phone both present: exactly one full-context fire
		_, err = uc.UpdateContact(ctx, "sess-1", &request.ContactInfo{ClientName: "Ana", ClientPhone: "555-1234"})
		assert.NoError(t, err)
		assert.Len(t, p.tracked(), 1)

		var patch map[string]any
		assert.NoError(t, json.Unmarshal(p.tracked()[0].Payload, &patch))
		assert.Equal(t, "Ana", patch["client_name"])
		assert.Equal(t, "Wedding Premium", patch["pack_name"])
		assert.Equal(t, "wedding", patch["event_type"])

		// later edits keep syncing but never fire again
		_, err = uc.UpdateContact(ctx, "sess-1", &request.ContactInfo{ClientName: "Ana", ClientPhone: "555-9999"})
		assert.NoError(t, err)
		assert.Len(t, p.tracked(), 1)
		assert.Equal(t, "555-9999", session.Contact.ClientPhone)
	})

	t.Run("no auto-track without a selected package", func(t *testing.T) {
		setup()
		defer teardown()

		session := entity.NewSession("sess-1")
		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)

		_, err := uc.UpdateContact(ctx, "sess-1", &request.ContactInfo{ClientName: "Ana", ClientPhone: "555-1234"})

		assert.NoError(t, err)
		assert.Empty(t, p.tracked())
		assert.False(t, session.ContactTracked)
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing gating fields block submission without a booking call", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		session.Contact.ClientPhone = ""

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)

		_, err := uc.Submit(ctx, "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 400, errors.HttpCode(err))
		bookingMock.AssertNotCalled(t, "CreateBooking", ctx, mock.Anything)
	})

	t.Run("creates the booking with the session's event and clears the session", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("DeleteSession", ctx, "sess-1").Return(nil)
		bookingMock.On("CreateBooking", ctx, mock.MatchedBy(func(payload *bookingrequest.CreateBooking) bool {
			return payload.SessionID == "sess-1" &&
				payload.PackID == 7 &&
				len(payload.Events) == 1 &&
				payload.Events[0].EventType == "wedding" &&
				payload.EventType == "wedding" &&
				payload.RequestedDate == payload.Events[0].EventDate
		})).Return(bookingresponse.CreatedBooking{BookingID: "b0b5c6ce-0000-0000-0000-000000000000"}, nil)

		result, err := uc.Submit(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, entity.SubmitSuccess, result.Submit)
		assert.Equal(t, "b0b5c6ce-0000-0000-0000-000000000000", result.BookingID)
		repoMock.AssertExpectations(t)
	})

	t.Run("a failed submit keeps every entered value for retry", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)
		repoMock.On("SaveSession", ctx, mock.Anything).Return(nil)
		bookingMock.On("CreateBooking", ctx, mock.Anything).
			Return(bookingresponse.CreatedBooking{}, errors.InternalServerError("booking store unavailable")).Once()

		result, err := uc.Submit(ctx, "sess-1")

		assert.Error(t, err)
		assert.Equal(t, entity.SubmitError, result.Submit)
		assert.Equal(t, entity.SubmitError, session.Submit)
		assert.NotEmpty(t, session.LastError)
		assert.Equal(t, "Ana", session.Contact.ClientName)
		assert.Equal(t, int64(7), session.SelectedPackID)
		repoMock.AssertNotCalled(t, "DeleteSession", ctx, "sess-1")

		// the retry goes through once the downstream recovers
		repoMock.On("DeleteSession", ctx, "sess-1").Return(nil)
		bookingMock.On("CreateBooking", ctx, mock.Anything).
			Return(bookingresponse.CreatedBooking{BookingID: "b0b5c6ce-0000-0000-0000-000000000000"}, nil).Once()

		retried, err := uc.Submit(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, entity.SubmitSuccess, retried.Submit)
	})

	t.Run("a successful submission is terminal", func(t *testing.T) {
		setup()
		defer teardown()

		session := sessionOnContactStep()
		session.MarkSubmitSuccess()

		repoMock.On("GetSession", ctx, "sess-1").Return(session, nil)

		_, err := uc.Submit(ctx, "sess-1")

		assert.Error(t, err)
		assert.Equal(t, 409, errors.HttpCode(err))
		bookingMock.AssertNotCalled(t, "CreateBooking", ctx, mock.Anything)
	})
}
