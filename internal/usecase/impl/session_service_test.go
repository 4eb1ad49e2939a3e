package impl

import (
	"context"
	"testing"
	"time"

	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"
	"secrets/internal/domain/repository"
	mockRepo "secrets/internal/mocks/repository"
	mockUsecase "secrets/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newSessionServiceForTest(t *testing.T) (*sessionService, *mockRepo.MockSessionRepository, *mockUsecase.MockAuthUsecase) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	auth := mockUsecase.NewMockAuthUsecase(t)
	svc := NewSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		Auth:        auth,
		Config:      newTestConfig(time.Hour),
		Logger:      newDiscardLogger(),
	}).(*sessionService)
	svc.now = func() time.Time { return fixedNow }

	return svc, sessionRepo, auth
}

func boundSession(userID uuid.UUID, expiresAt time.Time) *entity.Session {
	return &entity.Session{ID: uuid.New(), UserID: &userID, ExpiresAt: expiresAt}
}

func TestNewSessionService_DefaultTTL(t *testing.T) {
	svc := NewSessionService(SessionServiceParams{Logger: newDiscardLogger()}).(*sessionService)
	assert.Equal(t, defaultSessionTTL, svc.ttl)
}

func TestSessionService_Login_NewSession(t *testing.T) {
	svc, sessionRepo, auth := newSessionServiceForTest(t)
	user := &entity.User{ID: uuid.New()}

	auth.EXPECT().Serialize(user).Return(user.ID.String())
	sessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.UserID != nil && *s.UserID == user.ID && s.ExpiresAt.Equal(fixedNow.Add(time.Hour))
	})).Return(nil)

	session, err := svc.Login(context.Background(), nil, user)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.True(t, session.IsBound())
}

func TestSessionService_Login_RegeneratesSessionID(t *testing.T) {
	svc, sessionRepo, auth := newSessionServiceForTest(t)
	user := &entity.User{ID: uuid.New()}
	previous := boundSession(uuid.New(), fixedNow.Add(time.Minute))

	auth.EXPECT().Serialize(user).Return(user.ID.String())
	sessionRepo.EXPECT().Delete(mock.Anything, previous.ID).Return(nil).Once()
	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Login(context.Background(), previous, user)

	require.NoError(t, err)
	assert.NotEqual(t, previous.ID, session.ID)
	assert.Equal(t, user.ID, *session.UserID)
}

func TestSessionService_Login_Failures(t *testing.T) {
	t.Run("user without id", func(t *testing.T) {
		svc, _, auth := newSessionServiceForTest(t)
		user := &entity.User{}
		auth.EXPECT().Serialize(user).Return(uuid.Nil.String())

		_, err := svc.Login(context.Background(), nil, user)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("previous session cannot be discarded", func(t *testing.T) {
		svc, sessionRepo, auth := newSessionServiceForTest(t)
		user := &entity.User{ID: uuid.New()}
		previous := boundSession(uuid.New(), fixedNow.Add(time.Minute))
		auth.EXPECT().Serialize(user).Return(user.ID.String())
		sessionRepo.EXPECT().Delete(mock.Anything, previous.ID).Return(domainerrors.NewDatabaseExecuteError(errors.New("down"), "delete"))

		_, err := svc.Login(context.Background(), previous, user)
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store rejects create", func(t *testing.T) {
		svc, sessionRepo, auth := newSessionServiceForTest(t)
		user := &entity.User{ID: uuid.New()}
		auth.EXPECT().Serialize(user).Return(user.ID.String())
		sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.NewDatabaseExecuteError(errors.New("down"), "create"))

		session, err := svc.Login(context.Background(), nil, user)
		assert.Nil(t, session)
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	})
}

func TestSessionService_LoginThenLogout(t *testing.T) {
	svc, sessionRepo, auth := newSessionServiceForTest(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	auth.EXPECT().Serialize(user).Return(user.ID.String())
	auth.EXPECT().Deserialize(mock.Anything, user.ID.String()).Return(user, nil).Once()
	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Login(ctx, nil, user)
	require.NoError(t, err)
	assert.True(t, svc.IsAuthenticated(ctx, session))

	sessionRepo.EXPECT().Delete(mock.Anything, session.ID).Return(nil)
	require.NoError(t, svc.Logout(ctx, session))

	assert.False(t, svc.IsAuthenticated(ctx, session))
	assert.Nil(t, session.UserID)
}

func TestSessionService_Logout_NilSession(t *testing.T) {
	svc, _, _ := newSessionServiceForTest(t)

	assert.NoError(t, svc.Logout(context.Background(), nil))
}

func TestSessionService_IsAuthenticated(t *testing.T) {
	userID := uuid.New()

	t.Run("nil session", func(t *testing.T) {
		svc, _, _ := newSessionServiceForTest(t)
		assert.False(t, svc.IsAuthenticated(context.Background(), nil))
	})

	t.Run("expired session", func(t *testing.T) {
		svc, _, _ := newSessionServiceForTest(t)
		assert.False(t, svc.IsAuthenticated(context.Background(), boundSession(userID, fixedNow)))
	})

	t.Run("anonymous session", func(t *testing.T) {
		svc, _, _ := newSessionServiceForTest(t)
		assert.False(t, svc.IsAuthenticated(context.Background(), &entity.Session{ID: uuid.New(), ExpiresAt: fixedNow.Add(time.Hour)}))
	})

	t.Run("principal no longer exists", func(t *testing.T) {
		svc, _, auth := newSessionServiceForTest(t)
		auth.EXPECT().Deserialize(mock.Anything, userID.String()).Return(nil, nil)
		assert.False(t, svc.IsAuthenticated(context.Background(), boundSession(userID, fixedNow.Add(time.Hour))))
	})

	t.Run("store error", func(t *testing.T) {
		svc, _, auth := newSessionServiceForTest(t)
		auth.EXPECT().Deserialize(mock.Anything, userID.String()).Return(nil, errors.New("down"))
		assert.False(t, svc.IsAuthenticated(context.Background(), boundSession(userID, fixedNow.Add(time.Hour))))
	})
}

func TestSessionService_Restore(t *testing.T) {
	user := &entity.User{ID: uuid.New()}

	t.Run("bound session", func(t *testing.T) {
		svc, sessionRepo, auth := newSessionServiceForTest(t)
		stored := boundSession(user.ID, fixedNow.Add(time.Hour))
		sessionRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)
		auth.EXPECT().Deserialize(mock.Anything, user.ID.String()).Return(user, nil)

		session, got, err := svc.Restore(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, session)
		assert.Equal(t, user, got)
	})

	t.Run("unknown session", func(t *testing.T) {
		svc, sessionRepo, _ := newSessionServiceForTest(t)
		id := uuid.New()
		sessionRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrSessionNotFound)

		session, got, err := svc.Restore(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, session)
		assert.Nil(t, got)
	})

	t.Run("expired record", func(t *testing.T) {
		svc, sessionRepo, _ := newSessionServiceForTest(t)
		stored := boundSession(user.ID, fixedNow.Add(-time.Second))
		sessionRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)

		session, got, err := svc.Restore(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Nil(t, session)
		assert.Nil(t, got)
	})

	t.Run("dangling principal", func(t *testing.T) {
		svc, sessionRepo, auth := newSessionServiceForTest(t)
		stored := boundSession(user.ID, fixedNow.Add(time.Hour))
		sessionRepo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil)
		auth.EXPECT().Deserialize(mock.Anything, user.ID.String()).Return(nil, nil)
		sessionRepo.EXPECT().Delete(mock.Anything, stored.ID).Return(nil)

		session, got, err := svc.Restore(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Nil(t, session)
		assert.Nil(t, got)
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc, sessionRepo, _ := newSessionServiceForTest(t)
		id := uuid.New()
		sessionRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("down"), "find"))

		_, _, err := svc.Restore(context.Background(), id)
		assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	})
}

func TestSessionService_CleanupExpiredSessions(t *testing.T) {
	svc, sessionRepo, _ := newSessionServiceForTest(t)

	sessionRepo.EXPECT().DeleteExpired(mock.Anything, fixedNow).Return(3, nil).Once()
	removed, err := svc.CleanupExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	sessionRepo.EXPECT().DeleteExpired(mock.Anything, fixedNow).Return(0, errors.New("down")).Once()
	_, err = svc.CleanupExpiredSessions(context.Background())
	assert.Error(t, err)
}
