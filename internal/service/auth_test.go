package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/auth"
	"github.com/gestion-eventos/internal/mailer"
	"github.com/gestion-eventos/internal/model"
)

type fixture struct {
	attendees *mockAttendeeStore
	users     *mockUserStore
	notifier  *mockNotifier
	tokens    *auth.TokenService
	svc       *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		attendees: &mockAttendeeStore{},
		users:     &mockUserStore{},
		notifier:  &mockNotifier{},
		tokens:    auth.NewTokenService("test-secret", time.Hour, 24*time.Hour),
	}
	f.svc = NewAuthService(f.attendees, f.users, f.tokens, f.notifier, zerolog.Nop())
	t.Cleanup(func() {
		f.attendees.AssertExpectations(t)
		f.users.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})
	return f
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func ana(t *testing.T) *model.Attendee {
	return &model.Attendee{
		ID: 4, Nombre: "Ana", Apellido: "Diaz", Email: "ana@x.com",
		Password: hashed(t, "longenough1"), Telefono: 12345, DNI: 999,
	}
}

func olga(t *testing.T) *model.User {
	return &model.User{
		ID: 1, Nombre: "Olga", Apellido: "Ruiz", Email: "olga@x.com",
		Password: hashed(t, "organizer1"), RolID: 1, RolNombre: "administrador",
	}
}

func TestLoginAttendee_Success(t *testing.T) {
	f := newFixture(t)
	attendee := ana(t)
	ctx := context.Background()

	f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(attendee, nil)
	f.attendees.On("SetRefreshToken", ctx, int64(4), mock.AnythingOfType("string")).Return(nil)

	resp, err := f.svc.LoginAttendee(ctx, "ana@x.com", "longenough1")
	require.NoError(t, err)

	assert.Equal(t, MsgLoginOK, resp.Message)
	claims, err := f.tokens.VerifyKind(resp.Token, auth.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, model.TokenClaims{UserID: 4, UserEmail: "ana@x.com", UserName: "Ana", Role: model.RoleAsistente}, *claims)

	returned := resp.Usuario.(model.Attendee)
	assert.Equal(t, model.MaskedPassword, returned.Password)
	assert.NotContains(t, returned.Password, "$2a$")

	// The stored refresh token is a refresh-kind token for the same identity.
	stored := f.attendees.Calls[1].Arguments.String(2)
	refreshClaims, err := f.tokens.VerifyKind(stored, auth.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, *claims, *refreshClaims)
}

func TestLoginAttendee_UnknownEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.attendees.On("FindByEmail", ctx, "nadie@x.com").Return(nil, nil)

	_, err := f.svc.LoginAttendee(ctx, "nadie@x.com", "whatever1")

	assert.Equal(t, 404, apperror.HTTPStatus(err))
	assert.Equal(t, MsgUserNotFound, apperror.Message(err, ""))
}

func TestLoginAttendee_WrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(ana(t), nil)

	_, err := f.svc.LoginAttendee(ctx, "ana@x.com", "wrong-password")

	assert.Equal(t, 401, apperror.HTTPStatus(err))
	assert.Equal(t, MsgBadCredentials, apperror.Message(err, ""))
	f.attendees.AssertNotCalled(t, "SetRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginAttendee_StorageFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(nil, apperror.Storage("find", errors.New("down")))

	_, err := f.svc.LoginAttendee(ctx, "ana@x.com", "longenough1")
	assert.Equal(t, 500, apperror.HTTPStatus(err))
}

func TestLoginUser_NoRefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindByEmail", ctx, "olga@x.com").Return(olga(t), nil)

	resp, err := f.svc.LoginUser(ctx, "olga@x.com", "organizer1")
	require.NoError(t, err)

	claims, err := f.tokens.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUsuario, claims.Role)
	assert.Equal(t, model.MaskedPassword, resp.Usuario.(model.User).Password)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindByEmail", ctx, "olga@x.com").Return(olga(t), nil)

	_, err := f.svc.LoginUser(ctx, "olga@x.com", "nope")
	assert.Equal(t, 401, apperror.HTTPStatus(err))
}

func TestRefreshAttendeeToken(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing stored", func(t *testing.T) {
		f := newFixture(t)
		f.attendees.On("RefreshToken", ctx, int64(4)).Return(nil, nil)

		_, err := f.svc.RefreshAttendeeToken(ctx, 4)
		assert.Equal(t, 401, apperror.HTTPStatus(err))
		assert.Equal(t, MsgRefreshRequired, apperror.Message(err, ""))
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		expired, err := f.tokens.GenerateRefreshTokenWithTTL(ana(t).Claims(), -time.Minute)
		require.NoError(t, err)
		f.attendees.On("RefreshToken", ctx, int64(4)).Return(&expired, nil)

		_, err = f.svc.RefreshAttendeeToken(ctx, 4)
		assert.Equal(t, 403, apperror.HTTPStatus(err))
		assert.Equal(t, MsgRefreshInvalid, apperror.Message(err, ""))
	})

	t.Run("access token stored", func(t *testing.T) {
		f := newFixture(t)
		access, err := f.tokens.GenerateToken(ana(t).Claims())
		require.NoError(t, err)
		f.attendees.On("RefreshToken", ctx, int64(4)).Return(&access, nil)

		_, err = f.svc.RefreshAttendeeToken(ctx, 4)
		assert.Equal(t, 403, apperror.HTTPStatus(err))
	})

	t.Run("account gone", func(t *testing.T) {
		f := newFixture(t)
		valid, err := f.tokens.GenerateRefreshToken(ana(t).Claims())
		require.NoError(t, err)
		f.attendees.On("RefreshToken", ctx, int64(4)).Return(&valid, nil)
		f.attendees.On("FindByID", ctx, int64(4)).Return(nil, nil)

		_, err = f.svc.RefreshAttendeeToken(ctx, 4)
		assert.Equal(t, 404, apperror.HTTPStatus(err))
	})

	t.Run("valid", func(t *testing.T) {
		f := newFixture(t)
		attendee := ana(t)
		valid, err := f.tokens.GenerateRefreshToken(attendee.Claims())
		require.NoError(t, err)
		f.attendees.On("RefreshToken", ctx, int64(4)).Return(&valid, nil)
		f.attendees.On("FindByID", ctx, int64(4)).Return(attendee, nil)

		token, err := f.svc.RefreshAttendeeToken(ctx, 4)
		require.NoError(t, err)

		claims, err := f.tokens.VerifyKind(token, auth.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, attendee.Claims(), *claims)
	})
}

func TestResetAttendeePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.attendees.On("FindByEmail", ctx, "nadie@x.com").Return(nil, nil)

		_, err := f.svc.ResetAttendeePassword(ctx, "nadie@x.com")
		assert.Equal(t, 404, apperror.HTTPStatus(err))
	})

	t.Run("persists hash and mails plain password", func(t *testing.T) {
		f := newFixture(t)
		f.svc.generatePassword = func(int) (string, error) { return "Ab3$efghij", nil }
		attendee := ana(t)

		var storedHash string
		f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(attendee, nil)
		f.attendees.On("UpdatePassword", ctx, int64(4), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).
			Return(nil)
		f.notifier.On("Send", ctx, "ana@x.com", mock.AnythingOfType("string"),
			mock.MatchedBy(func(body string) bool { return strings.Contains(body, "Ab3$efghij") })).
			Return(nil)

		result, err := f.svc.ResetAttendeePassword(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.True(t, result.Notificado)
		assert.True(t, auth.ComparePassword(storedHash, "Ab3$efghij"))
	})

	t.Run("mail failure after persist is not an error", func(t *testing.T) {
		f := newFixture(t)
		f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(ana(t), nil)
		f.attendees.On("UpdatePassword", ctx, int64(4), mock.AnythingOfType("string")).Return(nil)
		f.notifier.On("Send", ctx, "ana@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		result, err := f.svc.ResetAttendeePassword(ctx, "ana@x.com")
		require.NoError(t, err)
		assert.False(t, result.Notificado)
		assert.Equal(t, MsgPasswordResetNoMail, result.Message)
	})

	t.Run("persist failure skips mail", func(t *testing.T) {
		f := newFixture(t)
		f.attendees.On("FindByEmail", ctx, "ana@x.com").Return(ana(t), nil)
		f.attendees.On("UpdatePassword", ctx, int64(4), mock.Anything).Return(apperror.Storage("upd", errors.New("down")))

		_, err := f.svc.ResetAttendeePassword(ctx, "ana@x.com")
		assert.ErrorIs(t, err, apperror.ErrStorage)
		f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResetUserPassword_MailerDisabled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.users.On("FindByEmail", ctx, "olga@x.com").Return(olga(t), nil)
	f.users.On("UpdatePassword", ctx, int64(1), mock.Anything).Return(nil)
	f.notifier.On("Send", ctx, "olga@x.com", mock.Anything, mock.Anything).Return(mailer.ErrDisabled)

	result, err := f.svc.ResetUserPassword(ctx, "olga@x.com")
	require.NoError(t, err)
	assert.False(t, result.Notificado)
}

func TestChangePassword_TargetsClaimsPrincipal(t *testing.T) {
	ctx := context.Background()

	t.Run("attendee", func(t *testing.T) {
		f := newFixture(t)
		attendee := ana(t)
		f.attendees.On("FindByID", ctx, int64(4)).Return(attendee, nil)
		f.attendees.On("UpdatePassword", ctx, int64(4), mock.AnythingOfType("string")).Return(nil)
		f.notifier.On("Send", ctx, "ana@x.com", mock.Anything, mock.Anything).Return(nil)

		claims := attendee.Claims()
		require.NoError(t, f.svc.ChangePassword(ctx, &claims, "newpassword1"))
	})

	t.Run("user, notification failure ignored", func(t *testing.T) {
		f := newFixture(t)
		user := olga(t)
		f.users.On("FindByID", ctx, int64(1)).Return(user, nil)
		f.users.On("UpdatePassword", ctx, int64(1), mock.AnythingOfType("string")).Return(nil)
		f.notifier.On("Send", ctx, "olga@x.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		claims := user.Claims()
		require.NoError(t, f.svc.ChangePassword(ctx, &claims, "newpassword1"))
	})

	t.Run("vanished account", func(t *testing.T) {
		f := newFixture(t)
		f.attendees.On("FindByID", ctx, int64(9)).Return(nil, nil)

		claims := model.TokenClaims{UserID: 9, Role: model.RoleAsistente}
		err := f.svc.ChangePassword(ctx, &claims, "newpassword1")
		assert.Equal(t, 404, apperror.HTTPStatus(err))
	})

	t.Run("no claims", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.ChangePassword(ctx, nil, "newpassword1")
		assert.Equal(t, 403, apperror.HTTPStatus(err))
	})
}

func TestRegisterAttendee_HashesAndMasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.attendees.On("Create", ctx, mock.MatchedBy(func(a *model.Attendee) bool {
		return a.Email == "ana@x.com" && auth.ComparePassword(a.Password, "longenough1")
	})).Return(&model.Attendee{ID: 4, Nombre: "Ana", Email: "ana@x.com", Password: "$2a$10$stored"}, nil)

	created, err := f.svc.RegisterAttendee(ctx, model.CreateAttendeeRequest{
		Nombre: "Ana", Apellido: "Diaz", Email: "ana@x.com", Password: "longenough1", Telefono: 12345, DNI: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, model.MaskedPassword, created.Password)
}

func TestEnsureUser(t *testing.T) {
	ctx := context.Background()
	req := model.CreateUserRequest{Nombre: "Admin", Apellido: "Admin", Email: "olga@x.com", Password: "organizer1", Telefono: 1, DNI: 1, RolID: 1}

	t.Run("existing", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByEmail", ctx, "olga@x.com").Return(olga(t), nil)

		user, created, err := f.svc.EnsureUser(ctx, req)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, model.MaskedPassword, user.Password)
	})

	t.Run("new", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("FindByEmail", ctx, "olga@x.com").Return(nil, nil)
		f.users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(olga(t), nil)

		_, created, err := f.svc.EnsureUser(ctx, req)
		require.NoError(t, err)
		assert.True(t, created)
	})
}
