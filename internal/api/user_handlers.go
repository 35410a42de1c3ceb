package api

import (
	"net/http"

	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/model"
)

// LoginUser godoc
// @Summary Organizer login
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string "Credenciales inválidas."
// @Failure 404 {object} map[string]string "Usuario no encontrado."
// @Router /usuarios/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "El email y la contraseña son requeridos.")
		return
	}

	resp, err := h.auth.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListUsers godoc
// @Summary List organizers
// @Tags Usuarios
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /usuarios [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener los usuarios")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// UserProfile godoc
// @Summary Own organizer profile
// @Tags Usuarios
// @Produce json
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/perfil [get]
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	h.writeUser(w, r, middleware.ClaimsFromContext(r.Context()).UserID)
}

// GetUser godoc
// @Summary Get organizer
// @Tags Usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	h.writeUser(w, r, id)
}

func (h *Handler) writeUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener el usuario")
		return
	}
	if user == nil {
		respondError(w, http.StatusNotFound, "No se encuentra el usuario")
		return
	}
	respondJSON(w, http.StatusOK, user.Masked())
}

// CreateUser godoc
// @Summary Create organizer
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "User"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/crear [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	created, err := h.auth.CreateUser(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "Error al crear el usuario")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// ReplaceUser godoc
// @Summary Update organizer
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.ReplaceUserRequest true "User"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/actualizar/{id} [put]
func (h *Handler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	var req model.ReplaceUserRequest
	h.updateUser(w, r, &req, func() model.UserPatch { return req.Patch() })
}

// PatchUser godoc
// @Summary Partially update organizer
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body model.UserPatch true "Fields to change"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]interface{} "No hay campos para actualizar"
// @Security BearerAuth
// @Router /usuarios/parcial/{id} [patch]
func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	var patch model.UserPatch
	h.updateUser(w, r, &patch, func() model.UserPatch { return patch })
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, body any, patch func() model.UserPatch) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := decodeAndValidate(r, body); err != nil {
		h.fail(w, r, err, "")
		return
	}

	err = h.users.Update(r.Context(), id, patch())
	err = notFoundAs(err, "No se encuentra el usuario")
	h.respondUpdate(w, r, err, "Error al actualizar el usuario")
}

// RecoverUserPassword godoc
// @Summary Reset organizer password
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body model.RecoverPasswordRequest true "Email"
// @Success 200 {object} service.PasswordResetResult
// @Failure 404 {object} map[string]string "Usuario no encontrado."
// @Router /usuarios/recuperar_password [patch]
func (h *Handler) RecoverUserPassword(w http.ResponseWriter, r *http.Request) {
	var req model.RecoverPasswordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.failAuth(w, r, err)
		return
	}

	result, err := h.auth.ResetUserPassword(r.Context(), req.Email)
	if err != nil {
		h.failAuth(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ChangeUserPassword godoc
// @Summary Change own organizer password
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body model.ChangePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /usuarios/password [patch]
func (h *Handler) ChangeUserPassword(w http.ResponseWriter, r *http.Request) {
	h.changePassword(w, r)
}

// ListRoles godoc
// @Summary List organizer roles
// @Tags Usuarios
// @Produce json
// @Success 200 {array} model.RoleRecord
// @Security BearerAuth
// @Router /usuarios/roles [get]
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener los roles")
		return
	}
	respondJSON(w, http.StatusOK, roles)
}
