package model

type Event struct {
	ID          int64  `json:"id" db:"id"`
	Nombre      string `json:"nombre" db:"nombre"`
	Ubicacion   string `json:"ubicacion" db:"ubicacion"`
	Fecha       Date   `json:"fecha" db:"fecha"`
	Descripcion string `json:"descripcion" db:"descripcion"`
	Realizado   bool   `json:"realizado" db:"realizado"`
}

type CreateEventRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Ubicacion   string `json:"ubicacion" validate:"required"`
	Fecha       Date   `json:"fecha" validate:"required"`
	Descripcion string `json:"descripcion"`
}

type ReplaceEventRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2"`
	Ubicacion   string `json:"ubicacion" validate:"required"`
	Fecha       Date   `json:"fecha" validate:"required"`
	Descripcion string `json:"descripcion"`
	Realizado   bool   `json:"realizado"`
}

func (r ReplaceEventRequest) Patch() EventPatch {
	return EventPatch{
		Nombre:      &r.Nombre,
		Ubicacion:   &r.Ubicacion,
		Fecha:       &r.Fecha,
		Descripcion: &r.Descripcion,
		Realizado:   &r.Realizado,
	}
}

type EventPatch struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2"`
	Ubicacion   *string `json:"ubicacion" validate:"omitempty,min=1"`
	Fecha       *Date   `json:"fecha"`
	Descripcion *string `json:"descripcion"`
	Realizado   *bool   `json:"realizado"`
}

func (p EventPatch) Fields() []Field {
	var fields []Field
	fields = appendField(fields, "nombre", p.Nombre)
	fields = appendField(fields, "ubicacion", p.Ubicacion)
	fields = appendField(fields, "fecha", p.Fecha)
	fields = appendField(fields, "descripcion", p.Descripcion)
	fields = appendField(fields, "realizado", p.Realizado)
	return fields
}

// EventAttendee is one roster line of an event.
type EventAttendee struct {
	ParticipationID int64  `json:"id" db:"id"`
	AsistenteID     int64  `json:"asistente_id" db:"asistente_id"`
	Nombre          string `json:"nombre" db:"nombre"`
	Apellido        string `json:"apellido" db:"apellido"`
	Email           string `json:"email" db:"email"`
	Telefono        int64  `json:"telefono" db:"telefono"`
	DNI             int64  `json:"dni" db:"dni"`
	Confirmacion    bool   `json:"confirmacion" db:"confirmacion"`
	AsistenciaReal  *bool  `json:"asistencia_real" db:"asistencia_real"`
}

type EventWithAttendees struct {
	EventoID    int64           `json:"evento_id"`
	Nombre      string          `json:"nombre"`
	Ubicacion   string          `json:"ubicacion"`
	Fecha       Date            `json:"fecha"`
	Descripcion string          `json:"descripcion"`
	Realizado   bool            `json:"realizado"`
	Asistentes  []EventAttendee `json:"asistentes"`
}
