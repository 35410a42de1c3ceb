// Package certificate renders participation certificates as PDF.
package certificate

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/gestion-eventos/internal/model"
)

type rgb struct{ r, g, b int }

var (
	primaryColor   = rgb{0xFF, 0x66, 0x00}
	secondaryColor = rgb{0x00, 0x56, 0xD2}
	textColor      = rgb{0x00, 0x00, 0x00}
)

// Font sizes are in points, line heights in mm.
const (
	titleSize   = 26
	headingSize = 18
	detailSize  = 14
	closingSize = 16
	margin      = 20.0
)

type Renderer struct {
	Compress bool
	Now      func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Compress: true, Now: time.Now}
}

// Render writes a single-page certificate for attendee's participation in
// event.
func Render(w io.Writer, attendee model.Attendee, event model.Event) error {
	return NewRenderer().Render(w, attendee, event)
}

func (r *Renderer) Render(w io.Writer, attendee model.Attendee, event model.Event) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetTitle("Certificado de Participación", true)
	pdf.SetAuthor("Equipo de Gestión de Eventos", true)
	if r.Now != nil {
		now := r.Now()
		pdf.SetCreationDate(now)
		pdf.SetModificationDate(now)
	}
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	width := pageWidth - 2*margin

	line := func(c rgb, style string, size float64, text string) {
		pdf.SetTextColor(c.r, c.g, c.b)
		pdf.SetFont("Helvetica", style, size)
		pdf.MultiCell(width, size*0.5, tr(text), "", "C", false)
	}

	pdf.SetY(35)
	line(primaryColor, "B", titleSize, "Certificado de Participación")
	pdf.Ln(20)

	line(textColor, "", headingSize, "Se otorga a:")
	pdf.Ln(4)
	line(secondaryColor, "B", headingSize, attendee.FullName())
	pdf.Ln(4)
	line(textColor, "", headingSize, "Con DNI: "+strconv.FormatInt(attendee.DNI, 10))
	pdf.Ln(8)
	line(textColor, "", headingSize, "Por su participación en el evento:")
	pdf.Ln(4)
	line(secondaryColor, "B", headingSize, event.Nombre)
	pdf.Ln(8)

	line(textColor, "", detailSize, "Descripción: "+event.Descripcion)
	pdf.Ln(6)
	line(textColor, "", detailSize, "Fecha: "+event.Fecha.String())
	pdf.Ln(3)
	line(textColor, "", detailSize, "Ubicación: "+event.Ubicacion)
	pdf.Ln(14)

	line(primaryColor, "B", closingSize, "¡Gracias por participar!")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return pdf.Output(w)
}

// Filename is the download name offered for a certificate.
func Filename(attendee model.Attendee, event model.Event) string {
	return fmt.Sprintf("certificado_%d_%d.pdf", event.ID, attendee.ID)
}
