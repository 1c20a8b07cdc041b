package messagestream

// Topics shared between publishing and consuming modules.
const (
	TopicLeadTracking           = "lead_tracking"
	TopicLeadTrackingPoisoned   = "lead_tracking_poisoned"
	TopicBookingCreated         = "booking_created"
	TopicBookingCreatedPoisoned = "booking_created_poisoned"
)
