package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          uuid.UUID     `db:"id"` // UUID
	SessionID   string        `db:"session_id"`
	ClientName  string        `db:"client_name"`
	ClientPhone string        `db:"client_phone"`
	ClientEmail string        `db:"client_email"`
	Message     string        `db:"message"`
	PackID      sql.NullInt64 `db:"pack_id"`
	PackName    string        `db:"pack_name"`
	// Legacy top-level duplicates of the first event, kept for older consumers.
	EventType     string       `db:"event_type"`
	RequestedDate time.Time    `db:"requested_date"`
	TimeSlot      string       `db:"time_slot"`
	Location      string       `db:"location"`
	CreatedAt     *time.Time   `db:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at"`
	DeletedAt     sql.NullTime `db:"deleted_at"`
}

type BookingEvent struct {
	ID        int64     `db:"id"`
	BookingID uuid.UUID `db:"booking_id"`
	EventName string    `db:"event_name"`
	EventType string    `db:"event_type"`
	EventDate time.Time `db:"event_date"`
	TimeSlot  string    `db:"time_slot"`
	Location  string    `db:"location"`
}
