package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/certificate"
	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/model"
	"github.com/gestion-eventos/internal/service"
)

type AttendeeRepository interface {
	List(ctx context.Context) ([]model.Attendee, error)
	FindByID(ctx context.Context, id int64) (*model.Attendee, error)
	Update(ctx context.Context, id int64, patch model.AttendeePatch) error
}

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) error
}

type RoleRepository interface {
	List(ctx context.Context) ([]model.RoleRecord, error)
}

type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
	ListActive(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id int64, patch model.EventPatch) error
	WithAttendees(ctx context.Context, id int64) (*model.EventWithAttendees, error)
}

type ParticipationRepository interface {
	List(ctx context.Context) ([]model.Participation, error)
	FindByID(ctx context.Context, id int64) (*model.Participation, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.Participation, error)
	ListByAttendee(ctx context.Context, attendeeID int64) ([]model.Participation, error)
	Create(ctx context.Context, attendeeID, eventID int64, confirmacion *bool) (*model.Participation, error)
	Update(ctx context.Context, id int64, patch model.ParticipationPatch) error
	Confirm(ctx context.Context, id int64, confirmacion bool) error
	MarkAttendance(ctx context.Context, id int64, attended bool) error
}

// AuthFlows is implemented by service.AuthService.
type AuthFlows interface {
	LoginAttendee(ctx context.Context, email, password string) (*model.LoginResponse, error)
	LoginUser(ctx context.Context, email, password string) (*model.LoginResponse, error)
	RefreshAttendeeToken(ctx context.Context, attendeeID int64) (string, error)
	ResetAttendeePassword(ctx context.Context, email string) (*service.PasswordResetResult, error)
	ResetUserPassword(ctx context.Context, email string) (*service.PasswordResetResult, error)
	ChangePassword(ctx context.Context, claims *model.TokenClaims, newPassword string) error
	RegisterAttendee(ctx context.Context, req model.CreateAttendeeRequest) (*model.Attendee, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type SchedulerStatus interface {
	IsRunning() bool
	NextRun(name string) *time.Time
}

type CertificateRenderer interface {
	Render(w io.Writer, attendee model.Attendee, event model.Event) error
}

// Handler contains all API handlers
type Handler struct {
	attendees      AttendeeRepository
	users          UserRepository
	roles          RoleRepository
	events         EventRepository
	participations ParticipationRepository
	auth           AuthFlows
	certificates   CertificateRenderer
	db             Pinger
	scheduler      SchedulerStatus
}

type Dependencies struct {
	Attendees      AttendeeRepository
	Users          UserRepository
	Roles          RoleRepository
	Events         EventRepository
	Participations ParticipationRepository
	Auth           AuthFlows
	Certificates   CertificateRenderer
	DB             Pinger
	Scheduler      SchedulerStatus
}

func NewHandler(deps Dependencies) *Handler {
	if deps.Certificates == nil {
		deps.Certificates = certificate.NewRenderer()
	}
	return &Handler{
		attendees:      deps.Attendees,
		users:          deps.Users,
		roles:          deps.Roles,
		events:         deps.Events,
		participations: deps.Participations,
		auth:           deps.Auth,
		certificates:   deps.Certificates,
		db:             deps.DB,
		scheduler:      deps.Scheduler,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondFailure maps err onto a status and writes {key: message}. Server
// errors are logged and answered with fallback.
func respondFailure(w http.ResponseWriter, r *http.Request, err error, key, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			key:      "Datos inválidos",
			"campos": verr.Fields(),
		})
		return
	case errors.Is(err, errBadBody):
		respondJSON(w, http.StatusBadRequest, map[string]string{key: errBadBody.Error()})
		return
	}

	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		middleware.LoggerFromContext(r.Context()).Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).Msg(fallback)
	}
	respondJSON(w, status, map[string]string{key: apperror.Message(err, fallback)})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	respondFailure(w, r, err, "error", fallback)
}

// failAuth is fail for login and password flows, which answer with
// {"message": ...}.
func (h *Handler) failAuth(w http.ResponseWriter, r *http.Request, err error) {
	respondFailure(w, r, err, "message", "Error al procesar la solicitud.")
}

// respondUpdate reports the outcome of a partial update.
func (h *Handler) respondUpdate(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]bool{"actualizado": true})
	case errors.Is(err, apperror.ErrNoFieldsToUpdate):
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"actualizado": false,
			"error":       apperror.Message(err, fallback),
		})
	default:
		h.fail(w, r, err, fallback)
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("ID inválido")
	}
	return id, nil
}

// canAccessAttendee reports whether claims may read or modify the attendee
// record id. Organizers may touch any attendee, attendees only themselves.
func canAccessAttendee(claims *model.TokenClaims, id int64) bool {
	if claims == nil {
		return false
	}
	switch claims.Role {
	case model.RoleUsuario:
		return true
	case model.RoleAsistente:
		return claims.UserID == id
	}
	return false
}

func maskAttendees(attendees []model.Attendee) []model.Attendee {
	masked := make([]model.Attendee, len(attendees))
	for i, a := range attendees {
		masked[i] = a.Masked()
	}
	return masked
}
