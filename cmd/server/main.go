package main

import (
	"github.com/gestion-eventos/cmd/server/cmd"

	_ "github.com/gestion-eventos/docs" // swagger docs
)

// @title Gestión de Eventos API
// @version 1.0
// @description Event registration backend: attendees, organizers, events and participations.

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	cmd.Execute()
}
