package usecases

import (
	"context"
	"database/sql"
	"time"

	"studio-booking-service/internal/module/lead/models/entity"
	"studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/lead/models/response"
	"studio-booking-service/internal/module/lead/repositories"
	"studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	TrackLead(ctx context.Context, payload *request.TrackLead) error
	ShowLeads(ctx context.Context, status string) ([]response.Lead, error)
	// queue
	ApplyTracking(ctx context.Context, payload *request.TrackLead) error
	MarkLeadConverted(ctx context.Context, payload *request.BookingCreated) error
	// scheduler
	MarkLeadAbandoned(ctx context.Context, payload *request.LeadAbandonment) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// TrackLead pushes a tracking patch onto the outbound queue. The caller gets
// an answer as soon as the message is handed off; persistence happens in the
// consumer.
func (u *usecase) TrackLead(ctx context.Context, payload *request.TrackLead) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return u.publish.Publish(messagestream.TopicLeadTracking, message.NewMessage(watermill.NewUUID(), jsonPayload))
}

// ApplyTracking folds one tracking patch into the session's lead record.
func (u *usecase) ApplyTracking(ctx context.Context, payload *request.TrackLead) error {
	return u.repo.MergeLead(ctx, PatchFromRequest(payload))
}

func (u *usecase) ShowLeads(ctx context.Context, status string) ([]response.Lead, error) {
	leads, err := u.repo.ListLeads(ctx, status)
	if err != nil {
		return nil, err
	}

	out := make([]response.Lead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, toResponse(lead))
	}
	return out, nil
}

func (u *usecase) MarkLeadConverted(ctx context.Context, payload *request.BookingCreated) error {
	return u.repo.MarkLeadConverted(ctx, payload.SessionID, payload.BookingID)
}

func (u *usecase) MarkLeadAbandoned(ctx context.Context, payload *request.LeadAbandonment) error {
	return u.repo.MarkLeadAbandoned(ctx, payload.SessionID)
}

// PatchFromRequest maps a wire patch onto the entity shape used by the merge.
// Empty or unparseable fields stay unset so they cannot clobber prior values.
func PatchFromRequest(payload *request.TrackLead) entity.Lead {
	patch := entity.Lead{
		SessionID:      payload.SessionID,
		EventName:      payload.EventName,
		EventType:      payload.EventType,
		TimeSlot:       payload.TimeSlot,
		Location:       payload.Location,
		PackName:       payload.PackName,
		ClientName:     payload.ClientName,
		ClientPhone:    payload.ClientPhone,
		ClientEmail:    payload.ClientEmail,
		Message:        payload.Message,
		ViewedPackages: payload.ViewedPackages,
	}

	if payload.EventDate != "" {
		if t, err := time.Parse(dateLayout, payload.EventDate); err == nil {
			patch.EventDate = sql.NullTime{Time: t, Valid: true}
		}
	}
	if payload.SelectedPackID != 0 {
		patch.SelectedPackID = sql.NullInt64{Int64: payload.SelectedPackID, Valid: true}
	}

	return patch
}

func toResponse(lead entity.Lead) response.Lead {
	resp := response.Lead{
		SessionID:      lead.SessionID,
		EventName:      lead.EventName,
		EventType:      lead.EventType,
		TimeSlot:       lead.TimeSlot,
		Location:       lead.Location,
		PackName:       lead.PackName,
		ClientName:     lead.ClientName,
		ClientPhone:    lead.ClientPhone,
		ClientEmail:    lead.ClientEmail,
		Message:        lead.Message,
		ViewedPackages: lead.ViewedPackages,
		Status:         string(lead.Status),
	}
	if lead.EventDate.Valid {
		resp.EventDate = lead.EventDate.Time.Format(dateLayout)
	}
	if lead.SelectedPackID.Valid {
		resp.SelectedPackID = lead.SelectedPackID.Int64
	}
	if lead.BookingID.Valid {
		resp.BookingID = lead.BookingID.String
	}
	if lead.UpdatedAt.Valid {
		resp.UpdatedAt = lead.UpdatedAt.Time.Format("2006-01-02 15:04:05")
	}
	return resp
}
