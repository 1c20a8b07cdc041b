package entity

import (
	"fmt"
	"time"
)

// Step is the wizard's position in the linear intake flow.
type Step string

const (
	StepEvent   Step = "event"
	StepPackage Step = "package"
	StepContact Step = "contact"
)

// SubmitState tracks the terminal submission sub-machine. Error is the only
// state that transitions backward (to another submit attempt); success is
// terminal for the session.
type SubmitState string

const (
	SubmitIdle    SubmitState = "idle"
	SubmitSuccess SubmitState = "success"
	SubmitError   SubmitState = "error"
)

type EventDetail struct {
	EventName string `json:"event_name"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date"`
	TimeSlot  string `json:"time_slot,omitempty"`
	Location  string `json:"location,omitempty"`
}

type ContactInfo struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	Message     string `json:"message"`
}

// Session is one visitor's wizard state, persisted in redis between requests.
type Session struct {
	ID             string      `json:"id"`
	Step           Step        `json:"step"`
	Event          EventDetail `json:"event"`
	SelectedPackID int64       `json:"selected_pack_id"`
	PackName       string      `json:"pack_name"`
	Contact        ContactInfo `json:"contact"`
	ContactTracked bool        `json:"contact_tracked"`
	ViewedPackages []string    `json:"viewed_packages"`
	Submit         SubmitState `json:"submit"`
	LastError      string      `json:"last_error,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Step:      StepEvent,
		Submit:    SubmitIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// next returns the step that follows s in the linear flow.
func (s Step) next() (Step, bool) {
	switch s {
	case StepEvent:
		return StepPackage, true
	case StepPackage:
		return StepContact, true
	}
	return "", false
}

// Advance moves the session to the given step. Only the single forward
// transition from the current step is legal.
func (s *Session) Advance(to Step) error {
	next, ok := s.Step.next()
	if !ok || next != to {
		return fmt.Errorf("illegal wizard transition %s -> %s", s.Step, to)
	}
	s.Step = to
	s.UpdatedAt = time.Now()
	return nil
}

// HasEventDetails reports whether the event step has been completed.
func (s *Session) HasEventDetails() bool {
	return s.Event.EventName != "" && s.Event.EventDate != ""
}

// HasPackage reports whether a package has been selected.
func (s *Session) HasPackage() bool {
	return s.SelectedPackID != 0
}

// ContactComplete reports whether the contact fields that gate submission
// (and the one-shot auto-track) are both present.
func (s *Session) ContactComplete() bool {
	return s.Contact.ClientName != "" && s.Contact.ClientPhone != ""
}

// RecordViewedPackages accumulates package names shown to the visitor,
// preserving first-seen order.
func (s *Session) RecordViewedPackages(names []string) {
	for _, name := range names {
		seen := false
		for _, v := range s.ViewedPackages {
			if v == name {
				seen = true
				break
			}
		}
		if !seen {
			s.ViewedPackages = append(s.ViewedPackages, name)
		}
	}
}

// MarkSubmitError records a failed submission. All entered data stays put so
// the visitor can retry without re-entering anything.
func (s *Session) MarkSubmitError(cause string) {
	s.Submit = SubmitError
	s.LastError = cause
	s.UpdatedAt = time.Now()
}

// MarkSubmitSuccess records the terminal success state.
func (s *Session) MarkSubmitSuccess() {
	s.Submit = SubmitSuccess
	s.LastError = ""
	s.UpdatedAt = time.Now()
}
