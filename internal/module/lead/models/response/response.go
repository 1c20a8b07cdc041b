package response

type Lead struct {
	SessionID      string   `json:"session_id"`
	EventName      string   `json:"event_name"`
	EventType      string   `json:"event_type"`
	EventDate      string   `json:"event_date,omitempty"`
	TimeSlot       string   `json:"time_slot,omitempty"`
	Location       string   `json:"location,omitempty"`
	SelectedPackID int64    `json:"selected_pack_id,omitempty"`
	PackName       string   `json:"pack_name,omitempty"`
	ClientName     string   `json:"client_name,omitempty"`
	ClientPhone    string   `json:"client_phone,omitempty"`
	ClientEmail    string   `json:"client_email,omitempty"`
	Message        string   `json:"message,omitempty"`
	ViewedPackages []string `json:"viewed_packages,omitempty"`
	Status         string   `json:"status"`
	BookingID      string   `json:"booking_id,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}
