package api

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/gestion-eventos/internal/apperror"
	"github.com/gestion-eventos/internal/model"
)

// memDB backs the in-memory repositories used by the handler tests.
type memDB struct {
	mu             sync.Mutex
	nextID         int64
	attendees      map[int64]model.Attendee
	users          map[int64]model.User
	events         map[int64]model.Event
	participations map[int64]model.Participation
	roles          []model.RoleRecord
}

func newMemDB() *memDB {
	return &memDB{
		attendees:      map[int64]model.Attendee{},
		users:          map[int64]model.User{},
		events:         map[int64]model.Event{},
		participations: map[int64]model.Participation{},
		roles:          []model.RoleRecord{{ID: 1, Nombre: "administrador"}, {ID: 2, Nombre: "organizador"}},
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := []T{}
	for _, id := range ids {
		if keep == nil || keep(m[id]) {
			out = append(out, m[id])
		}
	}
	return out
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

type memAttendees struct{ db *memDB }

func (r memAttendees) List(context.Context) ([]model.Attendee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return sortedValues(r.db.attendees, nil), nil
}

func (r memAttendees) FindByID(_ context.Context, id int64) (*model.Attendee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.attendees[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r memAttendees) FindByEmail(_ context.Context, email string) (*model.Attendee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.attendees {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, nil
}

func (r memAttendees) Create(_ context.Context, attendee *model.Attendee) (*model.Attendee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.attendees {
		if a.Email == attendee.Email {
			return nil, apperror.Conflict("El email ya está registrado")
		}
	}
	created := *attendee
	created.ID = r.db.id()
	r.db.attendees[created.ID] = created
	return &created, nil
}

func (r memAttendees) Update(_ context.Context, id int64, patch model.AttendeePatch) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if len(patch.Fields()) == 0 {
		return apperror.ErrNoFieldsToUpdate
	}
	a, ok := r.db.attendees[id]
	if !ok {
		return apperror.ErrNotFound
	}
	set(&a.Nombre, patch.Nombre)
	set(&a.Apellido, patch.Apellido)
	set(&a.Email, patch.Email)
	set(&a.Telefono, patch.Telefono)
	set(&a.DNI, patch.DNI)
	r.db.attendees[id] = a
	return nil
}

func (r memAttendees) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.attendees[id]
	if !ok {
		return apperror.ErrNotFound
	}
	a.Password = hash
	r.db.attendees[id] = a
	return nil
}

func (r memAttendees) SetRefreshToken(_ context.Context, id int64, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	a, ok := r.db.attendees[id]
	if !ok {
		return apperror.ErrNotFound
	}
	a.RefreshToken = &token
	r.db.attendees[id] = a
	return nil
}

func (r memAttendees) RefreshToken(_ context.Context, id int64) (*string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.attendees[id].RefreshToken, nil
}

type memUsers struct{ db *memDB }

func (r memUsers) List(context.Context) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	users := sortedValues(r.db.users, nil)
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (r memUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r memUsers) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if !slices.ContainsFunc(r.db.roles, func(role model.RoleRecord) bool { return role.ID == user.RolID }) {
		return nil, apperror.Validation("El rol indicado no existe")
	}
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return nil, apperror.Conflict("El email ya está registrado")
		}
	}
	created := *user
	created.ID = r.db.id()
	r.db.users[created.ID] = created
	return &created, nil
}

func (r memUsers) Update(_ context.Context, id int64, patch model.UserPatch) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if len(patch.Fields()) == 0 {
		return apperror.ErrNoFieldsToUpdate
	}
	u, ok := r.db.users[id]
	if !ok {
		return apperror.ErrNotFound
	}
	set(&u.Nombre, patch.Nombre)
	set(&u.Apellido, patch.Apellido)
	set(&u.Email, patch.Email)
	set(&u.Telefono, patch.Telefono)
	set(&u.DNI, patch.DNI)
	set(&u.RolID, patch.RolID)
	r.db.users[id] = u
	return nil
}

func (r memUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return apperror.ErrNotFound
	}
	u.Password = hash
	r.db.users[id] = u
	return nil
}

type memRoles struct{ db *memDB }

func (r memRoles) List(context.Context) ([]model.RoleRecord, error) {
	return r.db.roles, nil
}

type memEvents struct{ db *memDB }

func (r memEvents) List(context.Context) ([]model.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return sortedValues(r.db.events, nil), nil
}

func (r memEvents) ListActive(context.Context) ([]model.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return sortedValues(r.db.events, func(e model.Event) bool { return !e.Realizado }), nil
}

func (r memEvents) FindByID(_ context.Context, id int64) (*model.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r memEvents) Create(_ context.Context, event *model.Event) (*model.Event, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	created := *event
	created.ID = r.db.id()
	r.db.events[created.ID] = created
	return &created, nil
}

func (r memEvents) Update(_ context.Context, id int64, patch model.EventPatch) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if len(patch.Fields()) == 0 {
		return apperror.ErrNoFieldsToUpdate
	}
	e, ok := r.db.events[id]
	if !ok {
		return apperror.ErrNotFound
	}
	set(&e.Nombre, patch.Nombre)
	set(&e.Ubicacion, patch.Ubicacion)
	set(&e.Fecha, patch.Fecha)
	set(&e.Descripcion, patch.Descripcion)
	set(&e.Realizado, patch.Realizado)
	r.db.events[id] = e
	return nil
}

func (r memEvents) WithAttendees(_ context.Context, id int64) (*model.EventWithAttendees, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.events[id]
	if !ok {
		return nil, nil
	}
	roster := model.EventWithAttendees{
		EventoID:    e.ID,
		Nombre:      e.Nombre,
		Ubicacion:   e.Ubicacion,
		Fecha:       e.Fecha,
		Descripcion: e.Descripcion,
		Realizado:   e.Realizado,
		Asistentes:  []model.EventAttendee{},
	}
	for _, p := range sortedValues(r.db.participations, func(p model.Participation) bool { return p.EventoID == id }) {
		a := r.db.attendees[p.AsistenteID]
		roster.Asistentes = append(roster.Asistentes, model.EventAttendee{
			ParticipationID: p.ID,
			AsistenteID:     a.ID,
			Nombre:          a.Nombre,
			Apellido:        a.Apellido,
			Email:           a.Email,
			Telefono:        a.Telefono,
			DNI:             a.DNI,
			Confirmacion:    p.Confirmacion,
			AsistenciaReal:  p.AsistenciaReal,
		})
	}
	return &roster, nil
}

type memParticipations struct{ db *memDB }

// joined fills the nested attendee and event the way the SQL join does.
func (r memParticipations) joined(p model.Participation) model.Participation {
	a := r.db.attendees[p.AsistenteID]
	a.Password, a.RefreshToken = "", nil
	e := r.db.events[p.EventoID]
	p.Asistente, p.Evento = &a, &e
	return p
}

func (r memParticipations) list(keep func(model.Participation) bool) []model.Participation {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	list := sortedValues(r.db.participations, keep)
	for i := range list {
		list[i] = r.joined(list[i])
	}
	return list
}

func (r memParticipations) List(context.Context) ([]model.Participation, error) {
	return r.list(nil), nil
}

func (r memParticipations) ListByEvent(_ context.Context, eventID int64) ([]model.Participation, error) {
	return r.list(func(p model.Participation) bool { return p.EventoID == eventID }), nil
}

func (r memParticipations) ListByAttendee(_ context.Context, attendeeID int64) ([]model.Participation, error) {
	return r.list(func(p model.Participation) bool { return p.AsistenteID == attendeeID }), nil
}

func (r memParticipations) FindByID(_ context.Context, id int64) (*model.Participation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.participations[id]
	if !ok {
		return nil, nil
	}
	p = r.joined(p)
	return &p, nil
}

func (r memParticipations) Create(_ context.Context, attendeeID, eventID int64, confirmacion *bool) (*model.Participation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	_, attendeeOK := r.db.attendees[attendeeID]
	_, eventOK := r.db.events[eventID]
	if !attendeeOK || !eventOK {
		return nil, apperror.Validation("El asistente o el evento no existen")
	}
	for _, p := range r.db.participations {
		if p.AsistenteID == attendeeID && p.EventoID == eventID {
			return nil, apperror.Conflict("El asistente ya está inscripto en el evento")
		}
	}
	created := model.Participation{ID: r.db.id(), AsistenteID: attendeeID, EventoID: eventID, Confirmacion: true}
	if confirmacion != nil {
		created.Confirmacion = *confirmacion
	}
	r.db.participations[created.ID] = created
	return &created, nil
}

func (r memParticipations) Update(_ context.Context, id int64, patch model.ParticipationPatch) error {
	if len(patch.Fields()) == 0 {
		return apperror.ErrNoFieldsToUpdate
	}
	return r.modify(id, func(p *model.Participation) {
		set(&p.AsistenteID, patch.AsistenteID)
		set(&p.EventoID, patch.EventoID)
		set(&p.Confirmacion, patch.Confirmacion)
		if patch.AsistenciaReal != nil {
			p.AsistenciaReal = patch.AsistenciaReal
		}
	})
}

func (r memParticipations) Confirm(_ context.Context, id int64, confirmacion bool) error {
	return r.modify(id, func(p *model.Participation) { p.Confirmacion = confirmacion })
}

func (r memParticipations) MarkAttendance(_ context.Context, id int64, attended bool) error {
	return r.modify(id, func(p *model.Participation) { p.AsistenciaReal = &attended })
}

func (r memParticipations) modify(id int64, fn func(*model.Participation)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.participations[id]
	if !ok {
		return apperror.ErrNotFound
	}
	fn(&p)
	r.db.participations[id] = p
	return nil
}

type stubNotifier struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (n *stubNotifier) Send(_ context.Context, to, subject, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, to+": "+subject)
	return nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubScheduler struct{ running bool }

func (s stubScheduler) IsRunning() bool { return s.running }

func (s stubScheduler) NextRun(string) *time.Time { return nil }

var errSMTPDown = errors.New("smtp: connection refused")
