package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	"secrets/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var sessionColumns = []string{"id", "user_id", "expires_at", "created_at", "updated_at"}

func newTestSessionRepository(db *gorm.DB, now time.Time) *sessionRepository {
	return &sessionRepository{db: db, now: func() time.Time { return now }}
}

func TestSessionRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	repo := newTestSessionRepository(db, now)
	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(`^` + regexp.QuoteMeta(`SELECT * FROM "sessions" WHERE id = $1 AND expires_at > $2`)).
		WithArgs(id, now, 1).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(id.String(), userID.String(), now.Add(time.Hour), now, now))

	session, err := repo.FindByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	require.NotNil(t, session.UserID)
	assert.Equal(t, userID, *session.UserID)
	assert.True(t, session.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestSessionRepository_FindByID_ExpiredIsNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	repo := newTestSessionRepository(db, now)
	id := uuid.New()

	// Expired rows are filtered by the query, so the store returns nothing.
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND expires_at > $2`)).
		WithArgs(id, now, 1).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	session, err := repo.FindByID(context.Background(), id)

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, repository.ErrSessionNotFound))
}

func TestSessionRepository_FindByID_StoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTestSessionRepository(db, time.Now())

	mock.ExpectQuery(`^SELECT \* FROM "sessions"`).WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTestSessionRepository(db, time.Now())
	id := uuid.New()
	expires := time.Now().Add(time.Hour)

	mock.ExpectExec(`^INSERT INTO "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))

	session := &entity.Session{ID: id, ExpiresAt: expires}
	require.NoError(t, repo.Create(context.Background(), session))
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTestSessionRepository(db, time.Now())
	before := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	mock.ExpectExec(`^` + regexp.QuoteMeta(`DELETE FROM "sessions" WHERE expires_at <= $1`) + `$`).
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpired(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, 3, removed)
}

func TestSessionRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newTestSessionRepository(db, time.Now())
	id := uuid.New()

	mock.ExpectExec(`^` + regexp.QuoteMeta(`DELETE FROM "sessions" WHERE id = $1`) + `$`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))
}
