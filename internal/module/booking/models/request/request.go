package request

type BookingEvent struct {
	EventName string `json:"event_name" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot" validate:"omitempty,oneof=morning afternoon evening all-day"`
	Location  string `json:"location"`
}

type CreateBooking struct {
	SessionID   string         `json:"session_id" validate:"required"`
	ClientName  string         `json:"client_name" validate:"required"`
	ClientPhone string         `json:"client_phone" validate:"required"`
	ClientEmail string         `json:"client_email" validate:"omitempty,email"`
	Message     string         `json:"message"`
	PackID      int64          `json:"pack_id" validate:"required"`
	PackName    string         `json:"pack_name" validate:"required"`
	Events      []BookingEvent `json:"events" validate:"required,min=1,dive"`
	// Legacy duplicated fields, populated from the first event when omitted.
	EventType     string `json:"event_type"`
	RequestedDate string `json:"requested_date"`
	TimeSlot      string `json:"time_slot"`
	Location      string `json:"location"`
}
