package postgres

import (
	"context"
	"time"

	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/infra/persistence/model"
	"secrets/internal/infra/persistence/retry"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	policy *retry.Policy
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB, policy *retry.Policy) repository.UserRepository {
	return newUserRepository(db, policy)
}

func newUserRepository(db *gorm.DB, policy *retry.Policy) *userRepository {
	return &userRepository{db: db, policy: policy}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by username", "username = ?", username)
}

// FindByGoogleID retrieves the user linked to a Google account.
func (repo *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by google id", "google_id = ?", googleID)
}

func (repo *userRepository) findOne(ctx context.Context, details string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	err := repo.policy.Read(ctx, func(ctx context.Context) error {
		err := repo.db.WithContext(ctx).Where(query, args...).Take(&userM).Error
		if err == nil {
			return nil
		}
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return storeError(err, details)
	})
	if err != nil {
		return nil, err
	}

	// Map the persistence model back to a pure domain entity before returning.
	return model.ToUserDomain(&userM), nil
}

// FindWithSecret returns every user whose secret is set and non-empty, oldest first.
func (repo *userRepository) FindWithSecret(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel

	err := repo.policy.Read(ctx, func(ctx context.Context) error {
		userMs = userMs[:0]
		err := repo.db.WithContext(ctx).
			Where("secret IS NOT NULL AND secret <> ''").
			Order("created_at ASC").
			Find(&userMs).Error

		return storeError(err, "failed to list users with secrets")
	})
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, model.ToUserDomain(&userMs[i]))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := model.FromUserDomain(user)

	err := repo.policy.Write(ctx, func(ctx context.Context) error {
		err := repo.db.WithContext(ctx).Create(userM).Error
		if err == nil {
			return nil
		}
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username or google id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return storeError(err, "failed to create user")
	})
	if err != nil {
		return err
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves every column of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		return repository.ErrUserNotFound
	}

	userM := model.FromUserDomain(user)
	userM.UpdatedAt = time.Now()

	err := repo.policy.Write(ctx, func(ctx context.Context) error {
		result := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", userM.ID).
			Select("username", "password_hash", "google_id", "secret", "updated_at").
			Updates(userM)
		if result.Error != nil {
			if isUniqueConstraintViolation(result.Error) {
				return domainerrors.ErrDuplicateUsername.WrapMessage("username or google id already exists")
			}

			return storeError(result.Error, "failed to update user")
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}
