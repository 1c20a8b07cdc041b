package request

type EventDetails struct {
	EventName string `json:"event_name" validate:"required"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string `json:"time_slot" validate:"omitempty,oneof=morning afternoon evening all-day"`
	Location  string `json:"location"`
}

type SelectPackage struct {
	PackID int64 `json:"pack_id" validate:"required"`
}

// ContactInfo carries the contact step's current field values. Fields are
// individually optional so the client can sync on every change.
type ContactInfo struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	Message     string `json:"message"`
}
