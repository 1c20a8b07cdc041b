package repositories

import (
	"context"
	"fmt"
	"time"

	"studio-booking-service/config"
	leadrequest "studio-booking-service/internal/module/lead/models/request"
	"studio-booking-service/internal/module/wizard/models/entity"
	"studio-booking-service/internal/module/wizard/models/response"
	"studio-booking-service/internal/pkg/errors"
	"studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/scheduler"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

const sessionKeyPattern = "wizard:session:%s"

type repositories struct {
	redisClient *redis.Client
	log         log.Logger
	httpClient  *circuit.HTTPClient
	cfgIdentity *config.IdentityServiceConfig
	asynqClient *asynq.Client
	sessionTTL  time.Duration
}

type Repositories interface {
	// redis
	SaveSession(ctx context.Context, session *entity.Session) error
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// http
	ResolveVisitorToken(ctx context.Context, token string) (response.VisitorSession, error)
	ValidateStaffToken(ctx context.Context, token string) (response.StaffSession, error)
	// scheduler
	ScheduleAbandonmentCheck(ctx context.Context, sessionID string, delay time.Duration) (string, error)
}

func New(
	redisClient *redis.Client,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	cfgIdentity *config.IdentityServiceConfig,
	asynqClient *asynq.Client,
	sessionTTL time.Duration,
) Repositories {
	return &repositories{
		redisClient: redisClient,
		log:         log,
		httpClient:  httpClient,
		cfgIdentity: cfgIdentity,
		asynqClient: asynqClient,
		sessionTTL:  sessionTTL,
	}
}

// SaveSession implements Repositories.
func (r *repositories) SaveSession(ctx context.Context, session *entity.Session) error {
	key := fmt.Sprintf(sessionKeyPattern, session.ID)

	data, err := json.Marshal(session)
	if err != nil {
		return errors.InternalServerError("error marshal wizard session")
	}

	if err := r.redisClient.Set(ctx, key, data, r.sessionTTL).Err(); err != nil {
		return errors.InternalServerError("error save wizard session")
	}
	return nil
}

// GetSession implements Repositories.
func (r *repositories) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	key := fmt.Sprintf(sessionKeyPattern, sessionID)

	data, err := r.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, errors.NotFound("wizard session not found")
	}
	if err != nil {
		return nil, errors.InternalServerError("error get wizard session")
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.InternalServerError("error unmarshal wizard session")
	}
	return &session, nil
}

// DeleteSession implements Repositories.
func (r *repositories) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(sessionKeyPattern, sessionID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return errors.InternalServerError("error delete wizard session")
	}
	return nil
}

// ResolveVisitorToken implements Repositories. The identity service owns the
// token format; this side only needs the opaque session id behind it.
func (r *repositories) ResolveVisitorToken(ctx context.Context, token string) (response.VisitorSession, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/session/resolve?token=%s", r.cfgIdentity.Host, r.cfgIdentity.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.VisitorSession{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid visitor token", resp.StatusCode)
		return response.VisitorSession{}, errors.UnauthorizedError("invalid visitor token")
	}

	var respData response.VisitorSession
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.VisitorSession{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid visitor token", resp.StatusCode)
		return response.VisitorSession{}, errors.UnauthorizedError("invalid visitor token")
	}

	return respData, nil
}

// ValidateStaffToken implements Repositories.
func (r *repositories) ValidateStaffToken(ctx context.Context, token string) (response.StaffSession, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/staff/validate?token=%s", r.cfgIdentity.Host, r.cfgIdentity.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.StaffSession{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid staff token", resp.StatusCode)
		return response.StaffSession{}, errors.UnauthorizedError("invalid staff token")
	}

	var respData response.StaffSession
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.StaffSession{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid staff token", resp.StatusCode)
		return response.StaffSession{}, errors.UnauthorizedError("invalid staff token")
	}

	return respData, nil
}

// ScheduleAbandonmentCheck implements Repositories. The task fires after the
// configured delay and marks the session's lead abandoned unless it converted
// in the meantime.
func (r *repositories) ScheduleAbandonmentCheck(ctx context.Context, sessionID string, delay time.Duration) (string, error) {
	payload, err := json.Marshal(leadrequest.LeadAbandonment{SessionID: sessionID})
	if err != nil {
		return "", errors.InternalServerError("error marshal abandonment task")
	}

	task := asynq.NewTask(scheduler.TypeMarkLeadAbandoned, payload)
	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessIn(delay))
	if err != nil {
		return "", errors.InternalServerError("error enqueue abandonment task")
	}

	return info.ID, nil
}
