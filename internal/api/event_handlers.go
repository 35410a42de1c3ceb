package api

import (
	"net/http"

	"github.com/gestion-eventos/internal/model"
)

// ListEvents godoc
// @Summary List events
// @Tags Eventos
// @Produce json
// @Success 200 {array} model.Event
// @Router /eventos [get]
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener los eventos")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// ListActiveEvents godoc
// @Summary List upcoming events
// @Description Events not yet marked as done.
// @Tags Eventos
// @Produce json
// @Success 200 {array} model.Event
// @Router /eventos/activos [get]
func (h *Handler) ListActiveEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListActive(r.Context())
	if err != nil {
		h.fail(w, r, err, "Error al obtener los eventos")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get event
// @Tags Eventos
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} map[string]string
// @Router /eventos/{id} [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	event, err := h.events.FindByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener el evento")
		return
	}
	if event == nil {
		respondError(w, http.StatusNotFound, "No se encuentra el evento")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

// EventAttendees godoc
// @Summary Event roster
// @Description The event and every attendee registered for it.
// @Tags Eventos
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} model.EventWithAttendees
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /eventos/{id}/asistentes [get]
func (h *Handler) EventAttendees(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}

	roster, err := h.events.WithAttendees(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Error al obtener los asistentes del evento")
		return
	}
	if roster == nil {
		respondError(w, http.StatusNotFound, "No se encuentra el evento")
		return
	}
	respondJSON(w, http.StatusOK, roster)
}

// CreateEvent godoc
// @Summary Create event
// @Tags Eventos
// @Accept json
// @Produce json
// @Param request body model.CreateEventRequest true "Event"
// @Success 200 {object} model.Event
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /eventos/crear [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.fail(w, r, err, "")
		return
	}

	created, err := h.events.Create(r.Context(), &model.Event{
		Nombre:      req.Nombre,
		Ubicacion:   req.Ubicacion,
		Fecha:       req.Fecha,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		h.fail(w, r, err, "Error al crear el evento")
		return
	}
	respondJSON(w, http.StatusOK, created)
}

// ReplaceEvent godoc
// @Summary Update event
// @Tags Eventos
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body model.ReplaceEventRequest true "Event"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /eventos/actualizar/{id} [put]
func (h *Handler) ReplaceEvent(w http.ResponseWriter, r *http.Request) {
	var req model.ReplaceEventRequest
	h.updateEvent(w, r, &req, func() model.EventPatch { return req.Patch() })
}

// PatchEvent godoc
// @Summary Partially update event
// @Tags Eventos
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body model.EventPatch true "Fields to change"
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]interface{} "No hay campos para actualizar"
// @Security BearerAuth
// @Router /eventos/parcial/{id} [patch]
func (h *Handler) PatchEvent(w http.ResponseWriter, r *http.Request) {
	var patch model.EventPatch
	h.updateEvent(w, r, &patch, func() model.EventPatch { return patch })
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request, body any, patch func() model.EventPatch) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "")
		return
	}
	if err := decodeAndValidate(r, body); err != nil {
		h.fail(w, r, err, "")
		return
	}

	err = h.events.Update(r.Context(), id, patch())
	err = notFoundAs(err, "No se encuentra el evento")
	h.respondUpdate(w, r, err, "Error al actualizar el evento")
}
