package repositories

import (
	"context"
	"database/sql"

	"studio-booking-service/internal/module/booking/models/entity"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertBooking(ctx context.Context, booking entity.Booking, events []entity.BookingEvent) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingBySessionID(ctx context.Context, sessionID string) (entity.Booking, error)
	FindBookingEvents(ctx context.Context, bookingID string) ([]entity.BookingEvent, error)
	ListBookings(ctx context.Context) ([]entity.Booking, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertBooking implements Repositories. The booking row and its event rows
// commit together or not at all.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking, events []entity.BookingEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, session_id, client_name, client_phone, client_email, message,
			pack_id, pack_name, event_type, requested_date, time_slot, location, created_at)
		VALUES (:id, :session_id, :client_name, :client_phone, :client_email, :message,
			:pack_id, :pack_name, :event_type, :requested_date, :time_slot, :location, NOW())
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error inserting booking")
	}

	for _, event := range events {
		event.BookingID = booking.ID
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO booking_events (booking_id, event_name, event_type, event_date, time_slot, location)
			VALUES (:booking_id, :event_name, :event_type, :event_date, :time_slot, :location)
		`, event)
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error inserting booking event")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1 AND deleted_at IS NULL`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingBySessionID implements Repositories.
func (r *repositories) FindBookingBySessionID(ctx context.Context, sessionID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE session_id = $1 AND deleted_at IS NULL`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, sessionID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, nil
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by session id")
	}
	return booking, nil
}

// FindBookingEvents implements Repositories.
func (r *repositories) FindBookingEvents(ctx context.Context, bookingID string) ([]entity.BookingEvent, error) {
	query := `SELECT * FROM booking_events WHERE booking_id = $1 ORDER BY id`
	var events []entity.BookingEvent
	err := r.db.SelectContext(ctx, &events, query, bookingID)
	if err != nil {
		return nil, errors.InternalServerError("error find booking events")
	}
	return events, nil
}

// ListBookings implements Repositories.
func (r *repositories) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE deleted_at IS NULL ORDER BY created_at DESC`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, errors.InternalServerError("error list bookings")
	}
	return bookings, nil
}
