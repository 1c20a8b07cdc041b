package request

// TrackLead is a partial patch of wizard progress. Every field except the
// session id is optional; empty fields are ignored by the merge.
type TrackLead struct {
	SessionID      string   `json:"session_id" validate:"required"`
	EventName      string   `json:"event_name"`
	EventType      string   `json:"event_type"`
	EventDate      string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot       string   `json:"time_slot"`
	Location       string   `json:"location"`
	SelectedPackID int64    `json:"selected_pack_id"`
	PackName       string   `json:"pack_name"`
	ClientName     string   `json:"client_name"`
	ClientPhone    string   `json:"client_phone"`
	ClientEmail    string   `json:"client_email" validate:"omitempty,email"`
	Message        string   `json:"message"`
	ViewedPackages []string `json:"viewed_packages"`
}

type BookingCreated struct {
	SessionID string `json:"session_id" validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
}

type LeadAbandonment struct {
	SessionID string `json:"session_id" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
