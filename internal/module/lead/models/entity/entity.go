package entity

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type LeadStatus string

const (
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusAbandoned  LeadStatus = "abandoned"
	LeadStatusConverted  LeadStatus = "converted"
)

// Lead is the cumulative snapshot of one visitor's wizard progress, keyed by
// session. It exists independently of whether a booking is ever submitted.
type Lead struct {
	SessionID      string         `db:"session_id"`
	EventName      string         `db:"event_name"`
	EventType      string         `db:"event_type"`
	EventDate      sql.NullTime   `db:"event_date"`
	TimeSlot       string         `db:"time_slot"`
	Location       string         `db:"location"`
	SelectedPackID sql.NullInt64  `db:"selected_pack_id"`
	PackName       string         `db:"pack_name"`
	ClientName     string         `db:"client_name"`
	ClientPhone    string         `db:"client_phone"`
	ClientEmail    string         `db:"client_email"`
	Message        string         `db:"message"`
	ViewedPackages pq.StringArray `db:"viewed_packages"`
	Status         LeadStatus     `db:"status"`
	BookingID      sql.NullString `db:"booking_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
}

// MergeFrom folds a partial patch into the lead. The merge is monotonically
// additive: a field already set is only replaced by a non-empty value, never
// cleared, so patches may arrive in any order. ViewedPackages accumulates as
// an ordered set.
func (l *Lead) MergeFrom(patch Lead) {
	if patch.EventName != "" {
		l.EventName = patch.EventName
	}
	if patch.EventType != "" {
		l.EventType = patch.EventType
	}
	if patch.EventDate.Valid {
		l.EventDate = patch.EventDate
	}
	if patch.TimeSlot != "" {
		l.TimeSlot = patch.TimeSlot
	}
	if patch.Location != "" {
		l.Location = patch.Location
	}
	if patch.SelectedPackID.Valid {
		l.SelectedPackID = patch.SelectedPackID
	}
	if patch.PackName != "" {
		l.PackName = patch.PackName
	}
	if patch.ClientName != "" {
		l.ClientName = patch.ClientName
	}
	if patch.ClientPhone != "" {
		l.ClientPhone = patch.ClientPhone
	}
	if patch.ClientEmail != "" {
		l.ClientEmail = patch.ClientEmail
	}
	if patch.Message != "" {
		l.Message = patch.Message
	}
	for _, name := range patch.ViewedPackages {
		if !containsString(l.ViewedPackages, name) {
			l.ViewedPackages = append(l.ViewedPackages, name)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
