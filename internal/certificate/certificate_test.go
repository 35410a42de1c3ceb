package certificate

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-eventos/internal/model"
)

func fixture() (model.Attendee, model.Event) {
	attendee := model.Attendee{ID: 2, Nombre: "Ana", Apellido: "Pérez", DNI: 30111222}
	event := model.Event{
		ID:          7,
		Nombre:      "Meetup Go",
		Ubicacion:   "Sala 1",
		Fecha:       model.NewDate(2026, time.November, 3),
		Descripcion: "Charlas sobre concurrencia",
	}
	return attendee, event
}

func TestRender_ProducesPDF(t *testing.T) {
	attendee, event := fixture()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, attendee, event))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, buf.String(), "%%EOF")
}

func TestRender_Content(t *testing.T) {
	attendee, event := fixture()
	r := &Renderer{Compress: false, Now: func() time.Time { return time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC) }}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, attendee, event))
	out := buf.String()

	assert.Contains(t, out, "Certificado de Participaci")
	assert.Contains(t, out, "Con DNI: 30111222")
	assert.Contains(t, out, "Meetup Go")
	assert.Contains(t, out, "Fecha: 2026-11-03")
	assert.Contains(t, out, "Sala 1")
}

func TestRender_Deterministic(t *testing.T) {
	attendee, event := fixture()
	now := func() time.Time { return time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC) }

	var first bytes.Buffer
	require.NoError(t, (&Renderer{Compress: true, Now: now}).Render(&first, attendee, event))

	// Font and resource dictionaries come from maps; repeat enough times to
	// catch ordering drift.
	for i := 0; i < 20; i++ {
		var again bytes.Buffer
		require.NoError(t, (&Renderer{Compress: true, Now: now}).Render(&again, attendee, event))
		require.Equal(t, first.Bytes(), again.Bytes(), "render %d differs", i)
	}
}

func TestFilename(t *testing.T) {
	attendee, event := fixture()
	assert.Equal(t, "certificado_7_2.pdf", Filename(attendee, event))
}
