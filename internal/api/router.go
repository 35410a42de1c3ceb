package api

import (
	"net/http"

	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gestion-eventos/internal/metrics"
	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/model"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, auth *middleware.AuthMiddleware, limiter *middleware.RateLimiter, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// protect wraps a handler with authentication and, when roles are
	// given, a role gate.
	protect := func(fn http.HandlerFunc, roles ...model.Role) http.Handler {
		var next http.Handler = fn
		if len(roles) > 0 {
			next = middleware.RequireRole(roles...)(next)
		}
		return auth.Authenticate(next)
	}
	organizer := model.RoleUsuario
	attendee := model.RoleAsistente

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	mux.Handle("GET /metrics", metrics.Handler())

	// System
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /status", protect(h.Status, organizer))

	// Attendees
	mux.Handle("POST /asistentes/login", limiter.Limit(http.HandlerFunc(h.LoginAttendee)))
	mux.HandleFunc("POST /asistentes/crear", h.CreateAttendee)
	mux.Handle("PATCH /asistentes/recuperar_password", limiter.Limit(http.HandlerFunc(h.RecoverAttendeePassword)))
	mux.HandleFunc("GET /asistentes/perfil/{id}", h.RefreshAttendeeToken)
	mux.Handle("GET /asistentes", protect(h.ListAttendees, organizer))
	mux.Handle("GET /asistentes/perfil", protect(h.AttendeeProfile, attendee))
	mux.Handle("GET /asistentes/{id}", protect(h.GetAttendee, organizer, attendee))
	mux.Handle("PUT /asistentes/actualizar/{id}", protect(h.ReplaceAttendee, organizer, attendee))
	mux.Handle("PATCH /asistentes/parcial/{id}", protect(h.PatchAttendee, organizer, attendee))
	mux.Handle("PATCH /asistentes/password", protect(h.ChangeAttendeePassword, attendee))

	// Organizers
	mux.Handle("POST /usuarios/login", limiter.Limit(http.HandlerFunc(h.LoginUser)))
	mux.Handle("PATCH /usuarios/recuperar_password", limiter.Limit(http.HandlerFunc(h.RecoverUserPassword)))
	mux.Handle("GET /usuarios", protect(h.ListUsers, organizer))
	mux.Handle("GET /usuarios/perfil", protect(h.UserProfile, organizer))
	mux.Handle("GET /usuarios/roles", protect(h.ListRoles, organizer))
	mux.Handle("GET /usuarios/{id}", protect(h.GetUser, organizer))
	mux.Handle("POST /usuarios/crear", protect(h.CreateUser, organizer))
	mux.Handle("PUT /usuarios/actualizar/{id}", protect(h.ReplaceUser, organizer))
	mux.Handle("PATCH /usuarios/parcial/{id}", protect(h.PatchUser, organizer))
	mux.Handle("PATCH /usuarios/password", protect(h.ChangeUserPassword, organizer))

	// Events
	mux.HandleFunc("GET /eventos", h.ListEvents)
	mux.HandleFunc("GET /eventos/activos", h.ListActiveEvents)
	mux.HandleFunc("GET /eventos/{id}", h.GetEvent)
	mux.Handle("GET /eventos/{id}/asistentes", protect(h.EventAttendees, organizer))
	mux.Handle("POST /eventos/crear", protect(h.CreateEvent, organizer))
	mux.Handle("PUT /eventos/actualizar/{id}", protect(h.ReplaceEvent, organizer))
	mux.Handle("PATCH /eventos/parcial/{id}", protect(h.PatchEvent, organizer))

	// Participations
	mux.Handle("GET /participacion", protect(h.ListParticipations, organizer))
	mux.Handle("GET /participacion/mias", protect(h.MyParticipations, attendee))
	mux.Handle("GET /participacion/evento/{id}", protect(h.EventParticipations, organizer))
	mux.Handle("GET /participacion/{id}", protect(h.GetParticipation, organizer, attendee))
	mux.Handle("POST /participacion/crear", protect(h.CreateParticipation, organizer, attendee))
	mux.Handle("PUT /participacion/actualizar/{id}", protect(h.ReplaceParticipation, organizer))
	mux.Handle("PATCH /participacion/parcial/{id}", protect(h.PatchParticipation, organizer))
	mux.Handle("PATCH /participacion/confirmar/{id}", protect(h.ConfirmParticipation, organizer, attendee))
	mux.Handle("PATCH /participacion/asistencia/{id}", protect(h.MarkAttendance, organizer))
	mux.Handle("GET /participacion/certificado/{id}", protect(h.Certificate, organizer, attendee))

	// Apply global middleware. metrics wraps the mux directly so it sees the
	// matched pattern.
	return middleware.Chain(mux,
		middleware.CorrelationID(logger),
		middleware.RequestLogging(logger),
		middleware.Recover,
		middleware.CORS,
		metrics.HTTPMiddleware,
	)
}
