package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/auth"
	"github.com/gestion-eventos/internal/mailer"
	"github.com/gestion-eventos/internal/metrics"
	"github.com/gestion-eventos/internal/model"
)

const (
	MsgLoginOK             = "Inicio de sesión exitoso."
	MsgUserNotFound        = "Usuario no encontrado."
	MsgBadCredentials      = "Credenciales inválidas."
	MsgRefreshRequired     = "Refresh token requerido"
	MsgRefreshInvalid      = "Refresh token inválido"
	MsgTokenRefreshed      = "Token renovado."
	MsgPasswordReset       = "Se envió una nueva contraseña a su correo."
	MsgPasswordResetNoMail = "La contraseña fue restablecida pero no se pudo enviar el correo."
	MsgPasswordChanged     = "Contraseña actualizada."
)

type AttendeeStore interface {
	FindByID(ctx context.Context, id int64) (*model.Attendee, error)
	FindByEmail(ctx context.Context, email string) (*model.Attendee, error)
	Create(ctx context.Context, attendee *model.Attendee) (*model.Attendee, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	SetRefreshToken(ctx context.Context, id int64, token string) error
	RefreshToken(ctx context.Context, id int64) (*string, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type TokenIssuer interface {
	GenerateToken(claims model.TokenClaims) (string, error)
	GenerateRefreshToken(claims model.TokenClaims) (string, error)
	VerifyKind(tokenStr string, kind auth.TokenKind) (*model.TokenClaims, error)
}

type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

// AuthService implements login, token refresh, registration and the
// password lifecycle for attendees and organizers.
type AuthService struct {
	attendees AttendeeStore
	users     UserStore
	tokens    TokenIssuer
	notifier  Notifier
	logger    zerolog.Logger

	generatePassword func(length int) (string, error)
}

func NewAuthService(attendees AttendeeStore, users UserStore, tokens TokenIssuer, notifier Notifier, logger zerolog.Logger) *AuthService {
	return &AuthService{
		attendees:        attendees,
		users:            users,
		tokens:           tokens,
		notifier:         notifier,
		logger:           logger.With().Str("component", "auth").Logger(),
		generatePassword: auth.GeneratePassword,
	}
}

// LoginAttendee also issues a refresh token and stores it, replacing any
// previous one.
func (s *AuthService) LoginAttendee(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	attendee, err := s.attendees.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		metrics.LoginAttempts.WithLabelValues(string(model.RoleAsistente), "not_found").Inc()
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	if !auth.ComparePassword(attendee.Password, password) {
		metrics.LoginAttempts.WithLabelValues(string(model.RoleAsistente), "bad_credentials").Inc()
		return nil, apperror.Unauthorized(MsgBadCredentials)
	}

	claims := attendee.Claims()
	token, err := s.tokens.GenerateToken(claims)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(claims)
	if err != nil {
		return nil, err
	}
	if err := s.attendees.SetRefreshToken(ctx, attendee.ID, refresh); err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues(string(model.RoleAsistente), "success").Inc()
	return &model.LoginResponse{Message: MsgLoginOK, Token: token, Usuario: attendee.Masked()}, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.LoginAttempts.WithLabelValues(string(model.RoleUsuario), "not_found").Inc()
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	if !auth.ComparePassword(user.Password, password) {
		metrics.LoginAttempts.WithLabelValues(string(model.RoleUsuario), "bad_credentials").Inc()
		return nil, apperror.Unauthorized(MsgBadCredentials)
	}

	token, err := s.tokens.GenerateToken(user.Claims())
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues(string(model.RoleUsuario), "success").Inc()
	return &model.LoginResponse{Message: MsgLoginOK, Token: token, Usuario: user.Masked()}, nil
}

// RefreshAttendeeToken exchanges the attendee's stored refresh token for a
// new access token. The stored token is not rotated.
func (s *AuthService) RefreshAttendeeToken(ctx context.Context, attendeeID int64) (string, error) {
	stored, err := s.attendees.RefreshToken(ctx, attendeeID)
	if err != nil {
		return "", err
	}
	if stored == nil {
		return "", apperror.Unauthorized(MsgRefreshRequired)
	}

	claims, err := s.tokens.VerifyKind(*stored, auth.KindRefresh)
	if err != nil {
		s.logger.Debug().Err(err).Int64("attendee_id", attendeeID).Msg("stored refresh token rejected")
		return "", apperror.Forbidden(MsgRefreshInvalid)
	}

	attendee, err := s.attendees.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if attendee == nil {
		return "", apperror.NotFound(MsgUserNotFound)
	}

	return s.tokens.GenerateToken(attendee.Claims())
}

// PasswordResetResult reports whether the new password reached the user.
type PasswordResetResult struct {
	Message    string `json:"message"`
	Notificado bool   `json:"notificado"`
}

func (s *AuthService) ResetAttendeePassword(ctx context.Context, email string) (*PasswordResetResult, error) {
	attendee, err := s.attendees.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if attendee == nil {
		metrics.PasswordResets.WithLabelValues(string(model.RoleAsistente), "not_found").Inc()
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	return s.resetPassword(ctx, model.RoleAsistente, attendee, func(hash string) error {
		return s.attendees.UpdatePassword(ctx, attendee.ID, hash)
	})
}

func (s *AuthService) ResetUserPassword(ctx context.Context, email string) (*PasswordResetResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.PasswordResets.WithLabelValues(string(model.RoleUsuario), "not_found").Inc()
		return nil, apperror.NotFound(MsgUserNotFound)
	}
	return s.resetPassword(ctx, model.RoleUsuario, user, func(hash string) error {
		return s.users.UpdatePassword(ctx, user.ID, hash)
	})
}

// resetPassword persists a fresh random password and then mails it. A
// delivery failure after the password was stored is reported through the
// result, not as an error.
func (s *AuthService) resetPassword(ctx context.Context, role model.Role, person model.Person, persist func(hash string) error) (*PasswordResetResult, error) {
	plain, err := s.generatePassword(auth.GeneratedPasswordLength)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return nil, err
	}
	if err := persist(hash); err != nil {
		metrics.PasswordResets.WithLabelValues(string(role), "error").Inc()
		return nil, err
	}

	subject, body := mailer.PasswordResetMessage(person.FullName(), plain)
	if err := s.notifier.Send(ctx, person.ContactEmail(), subject, body); err != nil {
		metrics.PasswordResets.WithLabelValues(string(role), "not_notified").Inc()
		event := s.logger.Error()
		if errors.Is(err, mailer.ErrDisabled) {
			event = s.logger.Warn()
		}
		event.Err(err).Str("role", string(role)).Str("email", person.ContactEmail()).
			Msg("password reset persisted but notification failed")
		return &PasswordResetResult{Message: MsgPasswordResetNoMail, Notificado: false}, nil
	}

	metrics.PasswordResets.WithLabelValues(string(role), "success").Inc()
	return &PasswordResetResult{Message: MsgPasswordReset, Notificado: true}, nil
}

// ChangePassword sets a new password on the principal identified by claims.
func (s *AuthService) ChangePassword(ctx context.Context, claims *model.TokenClaims, newPassword string) error {
	if claims == nil {
		return apperror.Forbidden("Acceso denegado.")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	var person model.Person
	switch claims.Role {
	case model.RoleAsistente:
		attendee, err := s.attendees.FindByID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if attendee == nil {
			return apperror.NotFound(MsgUserNotFound)
		}
		if err := s.attendees.UpdatePassword(ctx, attendee.ID, hash); err != nil {
			return err
		}
		person = attendee
	case model.RoleUsuario:
		user, err := s.users.FindByID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.NotFound(MsgUserNotFound)
		}
		if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
			return err
		}
		person = user
	default:
		return apperror.Forbidden("Acceso denegado.")
	}

	subject, body := mailer.PasswordChangedMessage(person.FullName())
	if err := s.notifier.Send(ctx, person.ContactEmail(), subject, body); err != nil && !errors.Is(err, mailer.ErrDisabled) {
		s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("password change notification failed")
	}
	return nil
}

// RegisterAttendee hashes the password and stores a new attendee. The
// returned record is masked.
func (s *AuthService) RegisterAttendee(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.attendees.Create(ctx, &model.Attendee{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: hash,
		Telefono: req.Telefono,
		DNI:      req.DNI,
	})
	if err != nil {
		return nil, err
	}

	masked := created.Masked()
	return &masked, nil
}

func (s *AuthService) CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &model.User{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Email:    req.Email,
		Password: hash,
		Telefono: req.Telefono,
		DNI:      req.DNI,
		RolID:    req.RolID,
	})
	if err != nil {
		return nil, err
	}

	masked := created.Masked()
	return &masked, nil
}

// EnsureUser creates the organizer unless one with the same email exists.
// It reports whether a user was created.
func (s *AuthService) EnsureUser(ctx context.Context, req model.CreateUserRequest) (*model.User, bool, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		masked := existing.Masked()
		return &masked, false, nil
	}

	created, err := s.CreateUser(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
