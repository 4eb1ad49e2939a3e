package postgres

import (
	"context"
	"time"

	"secrets/internal/domain/entity"
	"secrets/internal/domain/repository"
	"secrets/internal/infra/persistence/model"
	"secrets/internal/infra/persistence/retry"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository keeps session records in the 'sessions' table.
type sessionRepository struct {
	db     *gorm.DB
	policy *retry.Policy
	now    func() time.Time
}

// NewSessionRepository is the constructor for the Postgres session store.
func NewSessionRepository(db *gorm.DB, policy *retry.Policy) repository.SessionRepository {
	return &sessionRepository{db: db, policy: policy, now: time.Now}
}

// Create stores a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := model.FromSessionDomain(session)

	err := repo.policy.Write(ctx, func(ctx context.Context) error {
		return storeError(repo.db.WithContext(ctx).Create(sessionM).Error, "failed to create session")
	})
	if err != nil {
		return err
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindByID returns an unexpired session.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	err := repo.policy.Read(ctx, func(ctx context.Context) error {
		err := repo.db.WithContext(ctx).
			Where("id = ? AND expires_at > ?", id, repo.now()).
			Take(&sessionM).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrSessionNotFound
		}

		return storeError(err, "failed to find session")
	})
	if err != nil {
		return nil, err
	}

	return model.ToSessionDomain(&sessionM), nil
}

// Delete removes a session record.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.policy.Write(ctx, func(ctx context.Context) error {
		err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{}).Error

		return storeError(err, "failed to delete session")
	})
}

// DeleteExpired removes every session whose expiry is not after before.
func (repo *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	var removed int64

	err := repo.policy.Write(ctx, func(ctx context.Context) error {
		result := repo.db.WithContext(ctx).Where("expires_at <= ?", before).Delete(&model.SessionModel{})
		removed = result.RowsAffected

		return storeError(result.Error, "failed to delete expired sessions")
	})
	if err != nil {
		return 0, err
	}

	return int(removed), nil
}
