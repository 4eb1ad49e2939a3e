package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	deliverycontext "secrets/internal/delivery/context"
	"secrets/internal/domain/entity"
	domainerrors "secrets/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSecretHandler_ListSecrets(t *testing.T) {
	d := newTestDeps(t)
	d.secretUC.EXPECT().ListSecrets(mock.Anything).Return([]string{"cats are great", "dogs too"}, nil)

	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/secrets", nil), rec)

	require.NoError(t, d.secretHandler().ListSecrets(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cats are great")
	assert.Contains(t, rec.Body.String(), "dogs too")
}

func TestSecretHandler_ListSecretsStoreFailure(t *testing.T) {
	d := newTestDeps(t)
	d.secretUC.EXPECT().ListSecrets(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("dial tcp 10.0.0.5:5432: refused"), "find secrets"))

	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/secrets", nil), rec)

	require.NoError(t, d.secretHandler().ListSecrets(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "temporarily unavailable")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestSecretHandler_SubmitPage(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		d := newTestDeps(t)
		d.sessionUC.EXPECT().IsAuthenticated(mock.Anything, (*entity.Session)(nil)).Return(false)

		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/submit", nil), rec)

		require.NoError(t, d.secretHandler().SubmitPage(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("signed in sees the form", func(t *testing.T) {
		d := newTestDeps(t)
		user := &entity.User{ID: uuid.New()}
		session := newLoggedInSession(user)
		d.sessionUC.EXPECT().IsAuthenticated(mock.Anything, session).Return(true)

		e := newTestEcho(t)
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/submit", nil), rec)
		deliverycontext.SetSession(c, session)
		deliverycontext.SetUser(c, user)

		require.NoError(t, d.secretHandler().SubmitPage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/submit"`)
	})
}

func TestSecretHandler_Submit(t *testing.T) {
	alice := &entity.User{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name         string
		principal    *entity.User
		secret       string
		submitErr    error
		wantLocation string
		wantErr      bool
	}{
		{name: "success", principal: alice, secret: "cats are great", wantLocation: "/secrets"},
		{name: "anonymous", principal: nil, secret: "cats", submitErr: domainerrors.ErrUnauthorized, wantLocation: "/login"},
		{name: "blank", principal: alice, secret: "   ", submitErr: domainerrors.ErrValidationFailed.WrapMessage("secret is blank"), wantLocation: "/submit?error=invalid_input"},
		{
			name: "store unavailable", principal: alice, secret: "cats",
			submitErr:    domainerrors.NewDatabaseExecuteError(errors.New("timeout"), "update user"),
			wantLocation: "/submit?error=unavailable",
		},
		{name: "unexpected", principal: alice, secret: "cats", submitErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.secretUC.EXPECT().SubmitSecret(mock.Anything, tt.principal, tt.secret).Return(tt.submitErr)

			e := newTestEcho(t)
			rec := httptest.NewRecorder()
			c := e.NewContext(newFormRequest("/submit", url.Values{"secret": {tt.secret}}), rec)
			if tt.principal != nil {
				deliverycontext.SetUser(c, tt.principal)
			}

			err := d.secretHandler().Submit(c)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
