package usecases

import (
	"context"
	"net/http"
	"time"

	"studio-booking-service/config"
	bookingrequest "studio-booking-service/internal/module/booking/models/request"
	bookingusecases "studio-booking-service/internal/module/booking/usecases"
	catalogentity "studio-booking-service/internal/module/catalog/models/entity"
	catalogusecases "studio-booking-service/internal/module/catalog/usecases"
	leadrequest "studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/wizard/models/entity"
	"studio-booking-service/internal/module/wizard/models/request"
	"studio-booking-service/internal/module/wizard/models/response"
	"studio-booking-service/internal/module/wizard/repositories"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	catalog catalogusecases.Usecase
	booking bookingusecases.Usecase
	cfg     *config.WizardConfig
}

type Usecase interface {
	StartSession(ctx context.Context, sessionID string) (response.WizardState, error)
	SubmitEventDetails(ctx context.Context, sessionID string, payload *request.EventDetails) (response.WizardState, error)
	ListPackagesForSession(ctx context.Context, sessionID string) (response.SessionPackages, error)
	SelectPackage(ctx context.Context, sessionID string, payload *request.SelectPackage) (response.WizardState, error)
	UpdateContact(ctx context.Context, sessionID string, payload *request.ContactInfo) (response.WizardState, error)
	Submit(ctx context.Context, sessionID string) (response.SubmissionResult, error)
}

func New(
	repo repositories.Repositories,
	log log.Logger,
	publish message.Publisher,
	catalog catalogusecases.Usecase,
	booking bookingusecases.Usecase,
	cfg *config.WizardConfig,
) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		catalog: catalog,
		booking: booking,
		cfg:     cfg,
	}
}

// StartSession initializes wizard state for the session, or returns the
// existing state so a reloaded page resumes where it left off. The first
// start creates the lead record (page view) and schedules the abandonment
// follow-up.
func (u *usecase) StartSession(ctx context.Context, sessionID string) (response.WizardState, error) {
	existing, err := u.repo.GetSession(ctx, sessionID)
	if err == nil {
		return toState(existing), nil
	}
	if errors.HttpCode(err) != http.StatusNotFound {
		// a transient store failure must not reset a returning visitor
		return response.WizardState{}, err
	}

	session := entity.NewSession(sessionID)
	if err := u.repo.SaveSession(ctx, session); err != nil {
		return response.WizardState{}, err
	}

	u.track(ctx, &leadrequest.TrackLead{SessionID: sessionID})

	if _, err := u.repo.ScheduleAbandonmentCheck(ctx, sessionID, u.cfg.AbandonAfter); err != nil {
		// follow-up scheduling is best effort
		u.log.Error(ctx, "error schedule abandonment check", err)
	}

	return toState(session), nil
}

// SubmitEventDetails completes the event step. Validation failures block
// advancement and fire no tracking call.
func (u *usecase) SubmitEventDetails(ctx context.Context, sessionID string, payload *request.EventDetails) (response.WizardState, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return response.WizardState{}, err
	}

	eventType := payload.EventType
	if eventType == "" {
		eventType = catalogentity.EventTypeOther
	}
	if !catalogentity.ValidEventType(eventType) {
		return response.WizardState{}, errors.BadRequest("unknown event type")
	}

	// parsed in the server's zone so a date equal to today passes the check
	eventDate, err := time.ParseInLocation(dateLayout, payload.EventDate, time.Local)
	if err != nil {
		return response.WizardState{}, errors.BadRequest("error parse event date")
	}
	if eventDate.Before(today()) {
		return response.WizardState{}, errors.UnprocessableEntity("event date must not be in the past")
	}

	session.Event = entity.EventDetail{
		EventName: payload.EventName,
		EventType: eventType,
		EventDate: payload.EventDate,
		TimeSlot:  payload.TimeSlot,
		Location:  payload.Location,
	}

	if err := session.Advance(entity.StepPackage); err != nil {
		return response.WizardState{}, errors.Conflict(err.Error())
	}

	if err := u.repo.SaveSession(ctx, session); err != nil {
		return response.WizardState{}, err
	}

	u.track(ctx, &leadrequest.TrackLead{
		SessionID: sessionID,
		EventName: session.Event.EventName,
		EventType: session.Event.EventType,
		EventDate: session.Event.EventDate,
		TimeSlot:  session.Event.TimeSlot,
		Location:  session.Event.Location,
	})

	return toState(session), nil
}

// ListPackagesForSession returns the packages matching the session's event
// type, falling back to the full catalog when nothing matches, and records
// the shown package names on the lead.
func (u *usecase) ListPackagesForSession(ctx context.Context, sessionID string) (response.SessionPackages, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return response.SessionPackages{}, err
	}

	if !session.HasEventDetails() {
		return response.SessionPackages{}, errors.UnprocessableEntity("event details are required before choosing a package")
	}

	list, err := u.catalog.ListPackages(ctx, session.Event.EventType)
	if err != nil {
		return response.SessionPackages{}, err
	}

	names := make([]string, 0, len(list.Packages))
	for _, pkg := range list.Packages {
		names = append(names, pkg.Name)
	}
	session.RecordViewedPackages(names)

	if err := u.repo.SaveSession(ctx, session); err != nil {
		return response.SessionPackages{}, err
	}

	u.track(ctx, &leadrequest.TrackLead{
		SessionID:      sessionID,
		ViewedPackages: names,
	})

	return response.SessionPackages{
		Packages: list.Packages,
		Fallback: list.Fallback,
	}, nil
}

// SelectPackage stores the chosen package and moves the wizard to the
// contact step. Re-selecting while already on the contact step is allowed.
func (u *usecase) SelectPackage(ctx context.Context, sessionID string, payload *request.SelectPackage) (response.WizardState, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return response.WizardState{}, err
	}

	pkg, err := u.catalog.GetPackage(ctx, payload.PackID)
	if err != nil {
		return response.WizardState{}, err
	}

	session.SelectedPackID = pkg.ID
	session.PackName = pkg.Name

	if session.Step == entity.StepPackage {
		if err := session.Advance(entity.StepContact); err != nil {
			return response.WizardState{}, errors.Conflict(err.Error())
		}
	}

	if err := u.repo.SaveSession(ctx, session); err != nil {
		return response.WizardState{}, err
	}

	u.track(ctx, &leadrequest.TrackLead{
		SessionID:      sessionID,
		SelectedPackID: pkg.ID,
		PackName:       pkg.Name,
	})

	return toState(session), nil
}

// UpdateContact syncs the contact step's field values into session state on
// every change. The first time name and phone are both present with a
// package selected, one full-context tracking call fires; the latch prevents
// any further automatic fires for the session.
func (u *usecase) UpdateContact(ctx context.Context, sessionID string, payload *request.ContactInfo) (response.WizardState, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return response.WizardState{}, err
	}

	session.Contact = entity.ContactInfo{
		ClientName:  payload.ClientName,
		ClientPhone: payload.ClientPhone,
		ClientEmail: payload.ClientEmail,
		Message:     payload.Message,
	}

	if !session.ContactTracked && session.ContactComplete() && session.HasPackage() {
		session.ContactTracked = true
		u.track(ctx, &leadrequest.TrackLead{
			SessionID:      sessionID,
			EventName:      session.Event.EventName,
			EventType:      session.Event.EventType,
			EventDate:      session.Event.EventDate,
			TimeSlot:       session.Event.TimeSlot,
			Location:       session.Event.Location,
			SelectedPackID: session.SelectedPackID,
			PackName:       session.PackName,
			ClientName:     session.Contact.ClientName,
			ClientPhone:    session.Contact.ClientPhone,
			ClientEmail:    session.Contact.ClientEmail,
			Message:        session.Contact.Message,
		})
	}

	if err := u.repo.SaveSession(ctx, session); err != nil {
		return response.WizardState{}, err
	}

	return toState(session), nil
}

// Submit performs the final booking create. Gating fields missing: no call
// is made. On failure the session keeps every entered value and stays open
// for retry; on success the session is terminal and reset.
func (u *usecase) Submit(ctx context.Context, sessionID string) (response.SubmissionResult, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return response.SubmissionResult{}, err
	}

	if session.Submit == entity.SubmitSuccess {
		return response.SubmissionResult{}, errors.Conflict("booking already submitted")
	}

	if !session.HasPackage() || !session.ContactComplete() {
		return response.SubmissionResult{}, errors.BadRequest("package, client name and client phone are required")
	}

	payload := &bookingrequest.CreateBooking{
		SessionID:   sessionID,
		ClientName:  session.Contact.ClientName,
		ClientPhone: session.Contact.ClientPhone,
		ClientEmail: session.Contact.ClientEmail,
		Message:     session.Contact.Message,
		PackID:      session.SelectedPackID,
		PackName:    session.PackName,
		Events: []bookingrequest.BookingEvent{
			{
				EventName: session.Event.EventName,
				EventType: session.Event.EventType,
				EventDate: session.Event.EventDate,
				TimeSlot:  session.Event.TimeSlot,
				Location:  session.Event.Location,
			},
		},
		EventType:     session.Event.EventType,
		RequestedDate: session.Event.EventDate,
		TimeSlot:      session.Event.TimeSlot,
		Location:      session.Event.Location,
	}

	created, err := u.booking.CreateBooking(ctx, payload)
	if err != nil {
		session.MarkSubmitError(err.Error())
		if saveErr := u.repo.SaveSession(ctx, session); saveErr != nil {
			u.log.Error(ctx, "error save wizard session after failed submit", saveErr)
		}
		return response.SubmissionResult{Submit: entity.SubmitError}, err
	}

	session.MarkSubmitSuccess()
	if err := u.repo.DeleteSession(ctx, sessionID); err != nil {
		u.log.Error(ctx, "error reset wizard session", err)
	}

	return response.SubmissionResult{
		BookingID: created.BookingID,
		Submit:    entity.SubmitSuccess,
	}, nil
}

// track publishes a tracking patch without awaiting the consumer. Failures
// are swallowed: the side channel never gates the primary flow.
func (u *usecase) track(ctx context.Context, patch *leadrequest.TrackLead) {
	jsonPayload, err := json.Marshal(patch)
	if err != nil {
		u.log.Error(ctx, "error marshal tracking patch", err)
		return
	}

	if err := u.publish.Publish(messagestream.TopicLeadTracking, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish tracking patch", err)
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func toState(session *entity.Session) response.WizardState {
	return response.WizardState{
		SessionID:      session.ID,
		Step:           session.Step,
		Event:          session.Event,
		SelectedPackID: session.SelectedPackID,
		PackName:       session.PackName,
		Contact:        session.Contact,
		Submit:         session.Submit,
		LastError:      session.LastError,
	}
}
