package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/errors"
	"secrets/internal/infra/persistence/retry"
)

const keyPrefix = "session:"

// sessionRecord is the JSON value stored under session:<id>.
type sessionRecord struct {
	UserID    *uuid.UUID `json:"userId,omitempty"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type sessionRepository struct {
	client redis.Cmdable
	policy *retry.Policy
	now    func() time.Time
}

// NewSessionRepository is the constructor for the Redis session store.
func NewSessionRepository(client redis.Cmdable, policy *retry.Policy) repository.SessionRepository {
	return &sessionRepository{client: client, policy: policy, now: time.Now}
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// Create stores the session with a TTL matching its expiry.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	now := repo.now()
	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "session already expired")
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	payload, err := json.Marshal(sessionRecord{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return repo.policy.Write(ctx, func(ctx context.Context) error {
		err := repo.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err()

		return storeError(err, "failed to create session")
	})
}

// FindByID returns the session stored under the id if it has not expired.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var payload []byte

	err := repo.policy.Read(ctx, func(ctx context.Context) error {
		var err error
		payload, err = repo.client.Get(ctx, sessionKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return repository.ErrSessionNotFound
		}

		return storeError(err, "failed to find session")
	})
	if err != nil {
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, errors.Wrap(repository.ErrSessionNotFound, "corrupt session record")
	}

	session := &entity.Session{
		ID:        id,
		UserID:    record.UserID,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
	if session.IsExpired(repo.now()) {
		return nil, repository.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes the key. A missing key is not an error.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.policy.Write(ctx, func(ctx context.Context) error {
		return storeError(repo.client.Del(ctx, sessionKey(id)).Err(), "failed to delete session")
	})
}

// DeleteExpired is a no-op: Redis evicts keys when their TTL elapses.
func (repo *sessionRepository) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

func storeError(err error, details string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
