package response

import (
	catalogresponse "studio-booking-service/internal/module/catalog/models/response"
	"studio-booking-service/internal/module/wizard/models/entity"
)

// WizardState is the session snapshot returned after every wizard operation.
type WizardState struct {
	SessionID      string             `json:"session_id"`
	Step           entity.Step        `json:"step"`
	Event          entity.EventDetail `json:"event"`
	SelectedPackID int64              `json:"selected_pack_id,omitempty"`
	PackName       string             `json:"pack_name,omitempty"`
	Contact        entity.ContactInfo `json:"contact"`
	Submit         entity.SubmitState `json:"submit"`
	LastError      string             `json:"last_error,omitempty"`
}

type SessionPackages struct {
	Packages []catalogresponse.Package `json:"packages"`
	Fallback bool                      `json:"fallback"`
}

type SubmissionResult struct {
	BookingID string             `json:"booking_id"`
	Submit    entity.SubmitState `json:"submit"`
}

// VisitorSession is the identity service's answer for a visitor token.
type VisitorSession struct {
	IsValid   bool   `json:"is_valid"`
	SessionID string `json:"session_id"`
}

// StaffSession is the identity service's answer for a staff token.
type StaffSession struct {
	IsValid bool   `json:"is_valid"`
	StaffID int64  `json:"staff_id"`
	Email   string `json:"email"`
}
