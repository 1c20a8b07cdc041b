package usecases

import (
	"context"
	"database/sql"
	"time"

	"studio-booking-service/internal/module/booking/models/entity"
	"studio-booking-service/internal/module/booking/models/request"
	"studio-booking-service/internal/module/booking/models/response"
	"studio-booking-service/internal/module/booking/repositories"
	leadrequest "studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error)
	ShowBooking(ctx context.Context, bookingID string) (response.Booking, error)
	ShowBookings(ctx context.Context) ([]response.Booking, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// CreateBooking persists the finalized booking. This is the only wizard call
// whose failure the visitor sees; everything after the insert is best effort.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error) {
	// one booking per wizard session
	existing, err := u.repo.FindBookingBySessionID(ctx, payload.SessionID)
	if err != nil {
		return response.CreatedBooking{}, err
	}
	if existing.ID != uuid.Nil {
		return response.CreatedBooking{}, errors.Conflict("booking already submitted for this session")
	}

	events := make([]entity.BookingEvent, 0, len(payload.Events))
	for _, ev := range payload.Events {
		eventDate, err := time.Parse(dateLayout, ev.EventDate)
		if err != nil {
			return response.CreatedBooking{}, errors.BadRequest("error parse event date")
		}
		events = append(events, entity.BookingEvent{
			EventName: ev.EventName,
			EventType: ev.EventType,
			EventDate: eventDate,
			TimeSlot:  ev.TimeSlot,
			Location:  ev.Location,
		})
	}

	booking := entity.Booking{
		ID:          uuid.New(),
		SessionID:   payload.SessionID,
		ClientName:  payload.ClientName,
		ClientPhone: payload.ClientPhone,
		ClientEmail: payload.ClientEmail,
		Message:     payload.Message,
		PackID:      sql.NullInt64{Int64: payload.PackID, Valid: payload.PackID != 0},
		PackName:    payload.PackName,
	}

	// legacy top-level fields mirror the first event
	first := events[0]
	booking.EventType = payload.EventType
	if booking.EventType == "" {
		booking.EventType = first.EventType
	}
	booking.RequestedDate = first.EventDate
	if payload.RequestedDate != "" {
		if t, err := time.Parse(dateLayout, payload.RequestedDate); err == nil {
			booking.RequestedDate = t
		}
	}
	booking.TimeSlot = payload.TimeSlot
	if booking.TimeSlot == "" {
		booking.TimeSlot = first.TimeSlot
	}
	booking.Location = payload.Location
	if booking.Location == "" {
		booking.Location = first.Location
	}

	if err := u.repo.InsertBooking(ctx, booking, events); err != nil {
		return response.CreatedBooking{}, err
	}

	u.publishBookingCreated(ctx, payload.SessionID, booking.ID.String())

	return response.CreatedBooking{BookingID: booking.ID.String()}, nil
}

func (u *usecase) ShowBooking(ctx context.Context, bookingID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	events, err := u.repo.FindBookingEvents(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	return toResponse(booking, events), nil
}

func (u *usecase) ShowBookings(ctx context.Context) ([]response.Booking, error) {
	bookings, err := u.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		events, err := u.repo.FindBookingEvents(ctx, booking.ID.String())
		if err != nil {
			return nil, err
		}
		out = append(out, toResponse(booking, events))
	}
	return out, nil
}

// publishBookingCreated notifies the lead tracker so the session's lead is
// marked converted. Failure here never fails the booking.
func (u *usecase) publishBookingCreated(ctx context.Context, sessionID, bookingID string) {
	payload := leadrequest.BookingCreated{
		SessionID: sessionID,
		BookingID: bookingID,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		u.log.Error(ctx, "error marshal booking created event", err)
		return
	}

	if err := u.publish.Publish(messagestream.TopicBookingCreated, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish booking created event", err)
	}
}

func toResponse(booking entity.Booking, events []entity.BookingEvent) response.Booking {
	resp := response.Booking{
		ID:            booking.ID.String(),
		SessionID:     booking.SessionID,
		ClientName:    booking.ClientName,
		ClientPhone:   booking.ClientPhone,
		ClientEmail:   booking.ClientEmail,
		Message:       booking.Message,
		PackName:      booking.PackName,
		EventType:     booking.EventType,
		RequestedDate: booking.RequestedDate.Format(dateLayout),
		TimeSlot:      booking.TimeSlot,
		Location:      booking.Location,
	}

	resp.Events = make([]response.BookingEvent, 0, len(events))
	for _, ev := range events {
		resp.Events = append(resp.Events, response.BookingEvent{
			EventName: ev.EventName,
			EventType: ev.EventType,
			EventDate: ev.EventDate.Format(dateLayout),
			TimeSlot:  ev.TimeSlot,
			Location:  ev.Location,
		})
	}

	if booking.CreatedAt != nil {
		resp.CreatedAt = booking.CreatedAt.Format("2006-01-02 15:04:05")
	}

	return resp
}
