package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"studio-booking-service/internal/module/lead/mocks"
	"studio-booking-service/internal/module/lead/models/entity"
	"studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/lead/usecases"
	log_internal "studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	p        *capturingPublisher
)

type capturingPublisher struct {
	published map[string][]*message.Message
}

// Close implements message.Publisher.
func (m *capturingPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *capturingPublisher) Publish(topic string, messages ...*message.Message) error {
	if m.published == nil {
		m.published = map[string][]*message.Message{}
	}
	m.published[topic] = append(m.published[topic], messages...)
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &capturingPublisher{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	uc = usecases.New(repoMock, log_internal.GetLogger(), p)
}

func teardown() {
	repoMock = nil
	p = nil
	uc = nil
}

func TestTrackLead(t *testing.T) {
	setup()
	defer teardown()

	t.Run("publishes the patch to the tracking topic", func(t *testing.T) {
		ctx := context.Background()
		payload := request.TrackLead{
			SessionID: "sess-1",
			EventName: "Ana & Ben",
		}

		err := uc.TrackLead(ctx, &payload)

		assert.NoError(t, err)
		assert.Len(t, p.published[messagestream.TopicLeadTracking], 1)
	})
}

func TestApplyTracking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("merges the converted patch", func(t *testing.T) {
		ctx := context.Background()
		payload := request.TrackLead{
			SessionID:      "sess-1",
			EventName:      "Ana & Ben",
			EventType:      "wedding",
			EventDate:      "2026-10-03",
			SelectedPackID: 7,
			PackName:       "Wedding Premium",
			ClientName:     "Ana",
			ClientPhone:    "555-1234",
			ViewedPackages: []string{"Wedding Premium"},
		}

		expectedPatch := entity.Lead{
			SessionID:      "sess-1",
			EventName:      "Ana & Ben",
			EventType:      "wedding",
			EventDate:      sql.NullTime{Time: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), Valid: true},
			SelectedPackID: sql.NullInt64{Int64: 7, Valid: true},
			PackName:       "Wedding Premium",
			ClientName:     "Ana",
			ClientPhone:    "555-1234",
			ViewedPackages: []string{"Wedding Premium"},
		}

		repoMock.On("MergeLead", ctx, expectedPatch).Return(nil)

		err := uc.ApplyTracking(ctx, &payload)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})
}

func TestPatchFromRequestIgnoresUnsetFields(t *testing.T) {
	patch := usecases.PatchFromRequest(&request.TrackLead{SessionID: "sess-1"})

	assert.False(t, patch.EventDate.Valid)
	assert.False(t, patch.SelectedPackID.Valid)
	assert.Empty(t, patch.EventName)
}

func TestMarkLeadConverted(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := request.BookingCreated{
		SessionID: "sess-1",
		BookingID: "00000000-0000-0000-0000-000000000000",
	}

	repoMock.On("MarkLeadConverted", ctx, payload.SessionID, payload.BookingID).Return(nil)

	err := uc.MarkLeadConverted(ctx, &payload)

	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestMarkLeadAbandoned(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	payload := request.LeadAbandonment{SessionID: "sess-1"}

	repoMock.On("MarkLeadAbandoned", ctx, payload.SessionID).Return(nil)

	err := uc.MarkLeadAbandoned(ctx, &payload)

	assert.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestShowLeads(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	leads := []entity.Lead{
		{
			SessionID:   "sess-1",
			EventName:   "Ana & Ben",
			EventType:   "wedding",
			ClientName:  "Ana",
			ClientPhone: "555-1234",
			Status:      entity.LeadStatusInProgress,
		},
	}

	repoMock.On("ListLeads", ctx, "in_progress").Return(leads, nil)

	resp, err := uc.ShowLeads(ctx, "in_progress")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "sess-1", resp[0].SessionID)
	assert.Equal(t, "in_progress", resp[0].Status)
}
