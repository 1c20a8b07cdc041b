package entity_test

import (
	"testing"

	"studio-booking-service/internal/module/wizard/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceFollowsTheLinearFlow(t *testing.T) {
	session := entity.NewSession("sess-1")

	assert.NoError(t, session.Advance(entity.StepPackage))
	assert.NoError(t, session.Advance(entity.StepContact))
	assert.Equal(t, entity.StepContact, session.Step)
}

func TestAdvanceRejectsSkipsAndBackwardMoves(t *testing.T) {
	session := entity.NewSession("sess-1")

	assert.Error(t, session.Advance(entity.StepContact), "skipping the package step")
	assert.Equal(t, entity.StepEvent, session.Step)

	assert.NoError(t, session.Advance(entity.StepPackage))
	assert.Error(t, session.Advance(entity.StepEvent), "moving backward")
	assert.Error(t, session.Advance(entity.StepPackage), "staying in place")

	assert.NoError(t, session.Advance(entity.StepContact))
	assert.Error(t, session.Advance(entity.StepContact), "contact is the last step")
}

func TestRecordViewedPackagesKeepsFirstSeenOrder(t *testing.T) {
	session := entity.NewSession("sess-1")

	session.RecordViewedPackages([]string{"Wedding Essential", "Wedding Premium"})
	session.RecordViewedPackages([]string{"Wedding Premium", "Wedding Royal"})

	assert.Equal(t, []string{"Wedding Essential", "Wedding Premium", "Wedding Royal"}, session.ViewedPackages)
}

func TestMarkSubmitErrorKeepsEnteredData(t *testing.T) {
	session := entity.NewSession("sess-1")
	session.Event = entity.EventDetail{EventName: "Ana & Ben", EventType: "wedding", EventDate: "2026-10-03"}
	session.SelectedPackID = 7
	session.Contact = entity.ContactInfo{ClientName: "Ana", ClientPhone: "555-1234"}

	session.MarkSubmitError("booking store unavailable")

	assert.Equal(t, entity.SubmitError, session.Submit)
	assert.Equal(t, "booking store unavailable", session.LastError)
	assert.Equal(t, "Ana & Ben", session.Event.EventName)
	assert.Equal(t, int64(7), session.SelectedPackID)
	assert.Equal(t, "Ana", session.Contact.ClientName)

	session.MarkSubmitSuccess()

	assert.Equal(t, entity.SubmitSuccess, session.Submit)
	assert.Empty(t, session.LastError)
}
