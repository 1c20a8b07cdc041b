package entity

import (
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"
)

// EventTypeOther is the reserved escape token: it is never matched as a
// category and means "do not filter packages".
const EventTypeOther = "other"

var EventTypes = []string{
	"wedding",
	"engagement",
	"portrait",
	"fashion",
	"event",
	"commercial",
	EventTypeOther,
}

func ValidEventType(eventType string) bool {
	for _, t := range EventTypes {
		if strings.EqualFold(t, eventType) {
			return true
		}
	}
	return false
}

type Package struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Price       float64        `db:"price"`
	Duration    string         `db:"duration"`
	CoverImage  string         `db:"cover_image"`
	Features    pq.StringArray `db:"features"`
	Category    string         `db:"category"`
	PackageType string         `db:"package_type"`
	Active      bool           `db:"active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}
