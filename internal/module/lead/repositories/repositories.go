package repositories

import (
	"context"
	"database/sql"
	"time"

	"studio-booking-service/internal/module/lead/models/entity"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/jmoiron/sqlx"
)

const leadLockExpiry = 8 * time.Second

type repositories struct {
	db  *sqlx.DB
	log log.Logger
	rs  *redsync.Redsync
}

type Repositories interface {
	MergeLead(ctx context.Context, patch entity.Lead) error
	FindLeadBySessionID(ctx context.Context, sessionID string) (entity.Lead, error)
	ListLeads(ctx context.Context, status string) ([]entity.Lead, error)
	MarkLeadConverted(ctx context.Context, sessionID string, bookingID string) error
	MarkLeadAbandoned(ctx context.Context, sessionID string) error
}

func New(db *sqlx.DB, log log.Logger, rs *redsync.Redsync) Repositories {
	return &repositories{
		db:  db,
		log: log,
		rs:  rs,
	}
}

// MergeLead implements Repositories. Patches for one session are serialized
// by a distributed lock plus a row lock, so the merge stays monotonic even
// when tracking messages arrive concurrently or out of order.
func (r *repositories) MergeLead(ctx context.Context, patch entity.Lead) error {
	mutex := r.rs.NewMutex("lock:lead:"+patch.SessionID, redsync.WithExpiry(leadLockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire lead lock")
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			r.log.Error(ctx, "error release lead lock", err)
		}
	}()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	query := `SELECT * FROM leads WHERE session_id = $1 FOR UPDATE`
	var existing entity.Lead
	err = tx.GetContext(ctx, &existing, query, patch.SessionID)
	if err != nil && err != sql.ErrNoRows {
		tx.Rollback()
		return errors.InternalServerError("error locking lead row")
	}

	if err == sql.ErrNoRows {
		lead := entity.Lead{SessionID: patch.SessionID, Status: entity.LeadStatusInProgress}
		lead.MergeFrom(patch)
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO leads (session_id, event_name, event_type, event_date, time_slot, location,
				selected_pack_id, pack_name, client_name, client_phone, client_email, message,
				viewed_packages, status, created_at)
			VALUES (:session_id, :event_name, :event_type, :event_date, :time_slot, :location,
				:selected_pack_id, :pack_name, :client_name, :client_phone, :client_email, :message,
				:viewed_packages, :status, NOW())
		`, lead)
	} else {
		existing.MergeFrom(patch)
		_, err = tx.NamedExecContext(ctx, `
			UPDATE leads
			SET event_name = :event_name, event_type = :event_type, event_date = :event_date,
				time_slot = :time_slot, location = :location, selected_pack_id = :selected_pack_id,
				pack_name = :pack_name, client_name = :client_name, client_phone = :client_phone,
				client_email = :client_email, message = :message, viewed_packages = :viewed_packages,
				updated_at = NOW()
			WHERE session_id = :session_id
		`, existing)
	}
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error upserting lead")
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindLeadBySessionID implements Repositories.
func (r *repositories) FindLeadBySessionID(ctx context.Context, sessionID string) (entity.Lead, error) {
	query := `SELECT * FROM leads WHERE session_id = $1`
	var lead entity.Lead
	err := r.db.GetContext(ctx, &lead, query, sessionID)
	if err == sql.ErrNoRows {
		return entity.Lead{}, errors.NotFound("lead not found")
	}
	if err != nil {
		return entity.Lead{}, errors.InternalServerError("error find lead by session id")
	}
	return lead, nil
}

// ListLeads implements Repositories.
func (r *repositories) ListLeads(ctx context.Context, status string) ([]entity.Lead, error) {
	var leads []entity.Lead
	var err error
	if status == "" {
		err = r.db.SelectContext(ctx, &leads, `SELECT * FROM leads ORDER BY updated_at DESC NULLS LAST, created_at DESC`)
	} else {
		err = r.db.SelectContext(ctx, &leads, `SELECT * FROM leads WHERE status = $1 ORDER BY updated_at DESC NULLS LAST, created_at DESC`, status)
	}
	if err != nil {
		return nil, errors.InternalServerError("error list leads")
	}
	return leads, nil
}

// MarkLeadConverted implements Repositories.
func (r *repositories) MarkLeadConverted(ctx context.Context, sessionID string, bookingID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leads SET status = $1, booking_id = $2, updated_at = NOW() WHERE session_id = $3
	`, entity.LeadStatusConverted, bookingID, sessionID)
	if err != nil {
		return errors.InternalServerError("error mark lead converted")
	}
	return nil
}

// MarkLeadAbandoned implements Repositories. Conversion wins: a lead that
// already converted is never demoted to abandoned.
func (r *repositories) MarkLeadAbandoned(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE leads SET status = $1, updated_at = NOW() WHERE session_id = $2 AND status = $3
	`, entity.LeadStatusAbandoned, sessionID, entity.LeadStatusInProgress)
	if err != nil {
		return errors.InternalServerError("error mark lead abandoned")
	}
	return nil
}
