package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/certificate"
	"github.com/gestion-eventos/internal/metrics"
	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/model"
)

const msgParticipationNotFound = "No se encuentra la participación"

// ListParticipations godoc
// @Summary List participations
// @Tags Participacion
// @Produce json
// @Success 200 {array} model.Participation
// @Security BearerAuth
// @Router /participacion [get]
func (h *Handler) ListParticipations(w http.ResponseWriter, r *http.Request) {
	list, err := h.participations.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener las participaciones")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// MyParticipations godoc
// @Summary Own participations
// @Description Participations of the attendee in the bearer token.
// @Tags Participacion
// @Produce json
// @Success 200 {array} model.Participation
// @Security BearerAuth
// @Router /participacion/mias [get]
func (h *Handler) MyParticipations(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	list, err := h.participations.ListByAttendee(r.Context(), claims.UserID)
	if err != nil {
		h.fail(w, r, err, "Error al obtener las participaciones")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// EventParticipations godoc
// @Summary Participations of an event
// @Tags Participacion
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} model.Participation
// @Security BearerAuth
// @Router /participacion/evento/{id} [get]
func (h *Handler) EventParticipations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	list, err := h.participations.ListByEvent(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener las participaciones")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// GetParticipation godoc
// @Summary Get participation
// @Description Attendees may only read their own participations.
// @Tags Participacion
// @Produce json
// @Param id path int true "Participation ID"
// @Success 200 {object} model.Participation
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /participacion/{id} [get]
func (h *Handler) GetParticipation(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwnedParticipation(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// loadOwnedParticipation resolves the {id} path value and checks the caller
// may act on it. It writes the error response itself and reports false when
// the handler should stop.
func (h *Handler) loadOwnedParticipation(w http.ResponseWriter, r *http.Request) (*model.Participation, bool) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return nil, false
	}

	p, err := h.participations.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener la participación")
		return nil, false
	}
	if p == nil {
		respondError(w, http.StatusNotFound, msgParticipationNotFound)
		return nil, false
	}
	if !canAccessAttendee(middleware.ClaimsFromContext(r.Context()), p.AsistenteID) {
		respondMessage(w, http.StatusForbidden, middleware.MsgAccessDenied)
		return nil, false
	}
	return p, true
}

// CreateParticipation godoc
// @Summary Register for an event
// @Description Attendees always register themselves. Organizers must name the attendee.
// @Tags Participacion
// @Accept json
// @Produce json
// @Param request body model.CreateParticipationRequest true "Registration"
// @Success 200 {object} model.Participation
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "El asistente ya está inscripto en el evento"
// @Security BearerAuth
// @Router /participacion/crear [post]
func (h *Handler) CreateParticipation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateParticipationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	claims := middleware.ClaimsFromContext(r.Context())
	attendeeID := req.AsistenteID
	if claims.Role == model.RoleAsistente {
		attendeeID = claims.UserID
	}
	if attendeeID == 0 {
		h.fail(w, r, apperror.Validation("asistente_id es requerido"), "")
		return
	}

	created, err := h.participations.Create(r.Context(), attendeeID, req.EventoID, req.Confirmacion)
	if err != nil {
		h.fail(w, r, err, "Error al crear la participación")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// ReplaceParticipation godoc
// @Summary Update participation
// @Tags Participacion
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body model.ReplaceParticipationRequest true "Participation"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /participacion/actualizar/{id} [put]
func (h *Handler) ReplaceParticipation(w http.ResponseWriter, r *http.Request) {
	var req model.ReplaceParticipationRequest
	h.updateParticipation(w, r, &req, func() model.ParticipationPatch { return req.Patch() })
}

// PatchParticipation godoc
// @Summary Partially update participation
// @Tags Participacion
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body model.ParticipationPatch true "Fields to change"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]interface{} "No hay campos para actualizar"
// @Security BearerAuth
// @Router /participacion/parcial/{id} [patch]
func (h *Handler) PatchParticipation(w http.ResponseWriter, r *http.Request) {
	var patch model.ParticipationPatch
	h.updateParticipation(w, r, &patch, func() model.ParticipationPatch { return patch })
}

func (h *Handler) updateParticipation(w http.ResponseWriter, r *http.Request, body any, patch func() model.ParticipationPatch) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := decodeAndValidate(r, body); err != nil {
		h.fail(w, r, err, "")
		return
	}

	h.respondUpdate(w, r, notFoundAs(h.participations.Update(r.Context(), id, patch()), msgParticipationNotFound),
		"Error al actualizar la participación")
}

// ConfirmParticipation godoc
// @Summary Confirm or decline attendance
// @Tags Participacion
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body model.ConfirmRequest true "Confirmation"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /participacion/confirmar/{id} [patch]
func (h *Handler) ConfirmParticipation(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwnedParticipation(w, r)
	if !ok {
		return
	}

	var req model.ConfirmRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	err := h.participations.Confirm(r.Context(), p.ID, *req.Confirmacion)
	h.respondUpdate(w, r, notFoundAs(err, msgParticipationNotFound), "Error al confirmar la participación")
}

// MarkAttendance godoc
// @Summary Record actual attendance
// @Tags Participacion
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body model.AttendanceRequest true "Attendance"
// @Success 200 {object} map[string]bool
// @Security BearerAuth
// @Router /participacion/asistencia/{id} [patch]
func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	var req model.AttendanceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}
	err = h.participations.MarkAttendance(r.Context(), id, *req.AsistenciaReal)
	h.respondUpdate(w, r, notFoundAs(err, msgParticipationNotFound), "Error al registrar la asistencia")
}

// Certificate godoc
// @Summary Download attendance certificate
// @Description PDF certificate for a participation whose attendance was recorded.
// @Tags Participacion
// @Produce application/pdf
// @Param id path int true "Participation ID"
// @Success 200 {file} file
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "La asistencia no fue registrada"
// @Security BearerAuth
// @Router /participacion/certificado/{id} [get]
func (h *Handler) Certificate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwnedParticipation(w, r)
	if !ok {
		return
	}
	if p.AsistenciaReal == nil || !*p.AsistenciaReal {
		respondError(w, http.StatusConflict, "La asistencia no fue registrada")
		return
	}

	var buf bytes.Buffer
	if err := h.certificates.Render(&buf, *p.Asistente, *p.Evento); err != nil {
		h.fail(w, r, err, "Error al generar el certificado")
		return
	}
	metrics.CertificatesIssued.Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", certificate.Filename(*p.Asistente, *p.Evento)))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// notFoundAs replaces the message of a not-found error.
func notFoundAs(err error, message string) error {
	if err != nil && errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound(message)
	}
	return err
}
