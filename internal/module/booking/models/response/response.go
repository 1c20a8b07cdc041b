package response

type CreatedBooking struct {
	BookingID string `json:"booking_id"`
}

type BookingEvent struct {
	EventName string `json:"event_name"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date"`
	TimeSlot  string `json:"time_slot,omitempty"`
	Location  string `json:"location,omitempty"`
}

type Booking struct {
	ID            string         `json:"id"`
	SessionID     string         `json:"session_id"`
	ClientName    string         `json:"client_name"`
	ClientPhone   string         `json:"client_phone"`
	ClientEmail   string         `json:"client_email,omitempty"`
	Message       string         `json:"message,omitempty"`
	PackName      string         `json:"pack_name"`
	EventType     string         `json:"event_type"`
	RequestedDate string         `json:"requested_date"`
	TimeSlot      string         `json:"time_slot,omitempty"`
	Location      string         `json:"location,omitempty"`
	Events        []BookingEvent `json:"events"`
	CreatedAt     string         `json:"created_at,omitempty"`
}
