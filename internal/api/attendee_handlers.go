package api

import (
	"net/http"

	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/model"
	"github.com/gestion-eventos/internal/service"
)

// LoginAttendee godoc
// @Summary Attendee login
// @Description Authenticate an attendee. Also stores a refresh token for later renewal.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string "El email y la contraseña son requeridos."
// @Failure 401 {object} map[string]string "Credenciales inválidas."
// @Failure 404 {object} map[string]string "Usuario no encontrado."
// @Failure 500 {object} map[string]string "Error al procesar la solicitud."
// @Router /asistentes/login [post]
func (h *Handler) LoginAttendee(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "El email y la contraseña son requeridos.")
		return
	}

	resp, err := h.auth.LoginAttendee(r.Context(), req.Email, req.Password)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListAttendees godoc
// @Summary List attendees
// @Tags Asistentes
// @Produce json
// @Success 200 {array} model.Attendee
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /asistentes [get]
func (h *Handler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.attendees.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener los asistentes")
		return
	}
	respondJSON(w, http.StatusOK, maskAttendees(attendees))
}

// AttendeeProfile godoc
// @Summary Own attendee profile
// @Description Returns the attendee identified by the bearer token.
// @Tags Asistentes
// @Produce json
// @Success 200 {object} model.Attendee
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /asistentes/perfil [get]
func (h *Handler) AttendeeProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	h.writeAttendee(w, r, claims.UserID)
}

// GetAttendee godoc
// @Summary Get attendee
// @Description Organizers may read any attendee; attendees only themselves.
// @Tags Asistentes
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} model.Attendee
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /asistentes/{id} [get]
func (h *Handler) GetAttendee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if !canAccessAttendee(middleware.ClaimsFromContext(r.Context()), id) {
		respondMessage(w, http.StatusForbidden, middleware.MsgAccessDenied)
		return
	}
	h.writeAttendee(w, r, id)
}

func (h *Handler) writeAttendee(w http.ResponseWriter, r *http.Request, id int64) {
	attendee, err := h.attendees.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener el asistente")
		return
	}
	if attendee == nil {
		respondError(w, http.StatusNotFound, "No se encuentra el asistente")
		return
	}
	respondJSON(w, http.StatusOK, attendee.Masked())
}

// CreateAttendee godoc
// @Summary Register attendee
// @Description Self-registration. The response echoes the attendee with a masked password.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param request body model.CreateAttendeeRequest true "Attendee"
// @Success 200 {object} model.Attendee
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "El email ya está registrado"
// @Router /asistentes/crear [post]
func (h *Handler) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAttendeeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	created, err := h.auth.RegisterAttendee(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "Error al crear el asistente")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// ReplaceAttendee godoc
// @Summary Update attendee
// @Description Overwrites every mutable field. Attendees may only update themselves.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param id path int true "Attendee ID"
// @Param request body model.ReplaceAttendeeRequest true "Attendee"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /asistentes/actualizar/{id} [put]
func (h *Handler) ReplaceAttendee(w http.ResponseWriter, r *http.Request) {
	var req model.ReplaceAttendeeRequest
	h.updateAttendee(w, r, &req, func() model.AttendeePatch { return req.Patch() })
}

// PatchAttendee godoc
// @Summary Partially update attendee
// @Description Updates only the fields present in the body.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param id path int true "Attendee ID"
// @Param request body model.AttendeePatch true "Fields to change"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]interface{} "No hay campos para actualizar"
// @Security BearerAuth
// @Router /asistentes/parcial/{id} [patch]
func (h *Handler) PatchAttendee(w http.ResponseWriter, r *http.Request) {
	var patch model.AttendeePatch
	h.updateAttendee(w, r, &patch, func() model.AttendeePatch { return patch })
}

func (h *Handler) updateAttendee(w http.ResponseWriter, r *http.Request, body any, patch func() model.AttendeePatch) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if !canAccessAttendee(middleware.ClaimsFromContext(r.Context()), id) {
		respondMessage(w, http.StatusForbidden, middleware.MsgAccessDenied)
		return
	}
	if err := decodeAndValidate(r, body); err != nil {
		h.fail(w, r, err, "")
		return
	}

	err = h.attendees.Update(r.Context(), id, patch())
	err = notFoundAs(err, "No se encuentra el asistente")
	h.respondUpdate(w, r, err, "Error al actualizar el asistente")
}

// RecoverAttendeePassword godoc
// @Summary Reset attendee password
// @Description Generates a new random password, stores it and e-mails it to the attendee.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param request body model.RecoverPasswordRequest true "Email"
// @Success 200 {object} service.PasswordResetResult
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Usuario no encontrado."
// @Router /asistentes/recuperar_password [patch]
func (h *Handler) RecoverAttendeePassword(w http.ResponseWriter, r *http.Request) {
	var req model.RecoverPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.failAuth(w, r, err)
		return
	}

	result, err := h.auth.ResetAttendeePassword(r.Context(), req.Email)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ChangeAttendeePassword godoc
// @Summary Change own password
// @Description The target account is always the one in the bearer token.
// @Tags Asistentes
// @Accept json
// @Produce json
// @Param request body model.ChangePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /asistentes/password [patch]
func (h *Handler) ChangeAttendeePassword(w http.ResponseWriter, r *http.Request) {
	h.changePassword(w, r)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req model.ChangePasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.failAuth(w, r, err)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), middleware.ClaimsFromContext(r.Context()), req.Password); err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, service.MsgPasswordChanged)
}

// RefreshAttendeeToken godoc
// @Summary Renew access token
// @Description Exchanges the attendee's stored refresh token for a new access token.
// @Tags Asistentes
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} map[string]string "Refresh token requerido"
// @Failure 403 {object} map[string]string "Refresh token inválido"
// @Failure 404 {object} map[string]string
// @Router /asistentes/perfil/{id} [get]
func (h *Handler) RefreshAttendeeToken(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}

	token, err := h.auth.RefreshAttendeeToken(r.Context(), id)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, model.TokenResponse{Message: service.MsgTokenRefreshed, Token: token})
}
