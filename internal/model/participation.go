package model

// Participation links one attendee to one event.
type Participation struct {
	ID             int64     `json:"id" db:"id"`
	AsistenteID    int64     `json:"asistente_id" db:"asistente_id"`
	EventoID       int64     `json:"evento_id" db:"evento_id"`
	Confirmacion   bool      `json:"confirmacion" db:"confirmacion"`
	AsistenciaReal *bool     `json:"asistencia_real" db:"asistencia_real"`
	Asistente      *Attendee `json:"asistente,omitempty" db:"-"`
	Evento         *Event    `json:"evento,omitempty" db:"-"`
}

// CreateParticipationRequest registers an attendee for an event. Attendees
// may omit asistente_id; it is taken from their token.
type CreateParticipationRequest struct {
	AsistenteID  int64 `json:"asistente_id" validate:"omitempty,gt=0"`
	EventoID     int64 `json:"evento_id" validate:"required,gt=0"`
	Confirmacion *bool `json:"confirmacion"`
}

type ReplaceParticipationRequest struct {
	AsistenteID    int64 `json:"asistente_id" validate:"required,gt=0"`
	EventoID       int64 `json:"evento_id" validate:"required,gt=0"`
	Confirmacion   bool  `json:"confirmacion"`
	AsistenciaReal *bool `json:"asistencia_real"`
}

func (r ReplaceParticipationRequest) Patch() ParticipationPatch {
	return ParticipationPatch{
		AsistenteID:    &r.AsistenteID,
		EventoID:       &r.EventoID,
		Confirmacion:   &r.Confirmacion,
		AsistenciaReal: r.AsistenciaReal,
	}
}

type ParticipationPatch struct {
	AsistenteID    *int64 `json:"asistente_id" validate:"omitempty,gt=0"`
	EventoID       *int64 `json:"evento_id" validate:"omitempty,gt=0"`
	Confirmacion   *bool  `json:"confirmacion"`
	AsistenciaReal *bool  `json:"asistencia_real"`
}

func (p ParticipationPatch) Fields() []Field {
	var fields []Field
	fields = appendField(fields, "asistente_id", p.AsistenteID)
	fields = appendField(fields, "evento_id", p.EventoID)
	fields = appendField(fields, "confirmacion", p.Confirmacion)
	fields = appendField(fields, "asistencia_real", p.AsistenciaReal)
	return fields
}

type ConfirmRequest struct {
	Confirmacion *bool `json:"confirmacion" validate:"required"`
}

type AttendanceRequest struct {
	AsistenciaReal *bool `json:"asistencia_real" validate:"required"`
}
