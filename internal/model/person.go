package model

import "strings"

// MaskedPassword replaces password hashes in every response body.
const MaskedPassword = "*********"

// Person is the capability shared by attendees and organizers.
type Person interface {
	FullName() string
	ContactEmail() string
}

func fullName(nombre, apellido string) string {
	return strings.TrimSpace(nombre + " " + apellido)
}
