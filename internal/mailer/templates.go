package mailer

import "fmt"

func PasswordResetMessage(name, password string) (subject, body string) {
	subject = "Recuperación de contraseña"
	body = fmt.Sprintf(
		"Hola %s,\n\n"+
			"Recibimos una solicitud para restablecer tu contraseña.\n"+
			"Tu nueva contraseña es: %s\n\n"+
			"Te recomendamos cambiarla después de iniciar sesión.\n\n"+
			"Equipo de Gestión de Eventos",
		name, password)
	return subject, body
}

func PasswordChangedMessage(name string) (subject, body string) {
	subject = "Tu contraseña fue modificada"
	body = fmt.Sprintf(
		"Hola %s,\n\n"+
			"Te confirmamos que la contraseña de tu cuenta fue modificada.\n"+
			"Si no realizaste este cambio, solicitá una recuperación de contraseña de inmediato.\n\n"+
			"Equipo de Gestión de Eventos",
		name)
	return subject, body
}
