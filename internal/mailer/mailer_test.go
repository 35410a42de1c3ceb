package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/gestion-eventos/internal/config"
)

func testConfig() config.EmailConfig {
	return config.EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "eventos@example.com",
		Password: "secret",
		FromName: "Equipo de Gestión de Eventos",
	}
}

func TestSend_DisabledSkips(t *testing.T) {
	m := New(config.EmailConfig{}, zerolog.Nop())
	m.send = func(context.Context, *mail.Msg) error {
		t.Fatal("send must not be called")
		return nil
	}

	err := m.Send(context.Background(), "ana@example.com", "asunto", "texto")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestSend_BuildsPlainTextMessage(t *testing.T) {
	m := New(testConfig(), zerolog.Nop())

	var captured *mail.Msg
	m.send = func(_ context.Context, msg *mail.Msg) error {
		captured = msg
		return nil
	}

	subject, body := PasswordResetMessage("Ana Pérez", "Xy9!abcdef")
	require.NoError(t, m.Send(context.Background(), "ana@example.com", subject, body))
	require.NotNil(t, captured)

	var buf bytes.Buffer
	_, err := captured.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "eventos@example.com")
	assert.Contains(t, raw, "<ana@example.com>")
	assert.Contains(t, raw, "text/plain")
	assert.Equal(t, []string{"<ana@example.com>"}, captured.GetToString())
}

func TestSend_DeliveryFailure(t *testing.T) {
	m := New(testConfig(), zerolog.Nop())
	m.send = func(context.Context, *mail.Msg) error { return errors.New("connection refused") }

	err := m.Send(context.Background(), "ana@example.com", "asunto", "texto")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDisabled)
}

func TestSend_InvalidRecipient(t *testing.T) {
	m := New(testConfig(), zerolog.Nop())
	m.send = func(context.Context, *mail.Msg) error { return nil }

	assert.Error(t, m.Send(context.Background(), "not-an-address", "asunto", "texto"))
}

func TestTemplates(t *testing.T) {
	subject, body := PasswordResetMessage("Ana", "Xy9!abcdef")
	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Xy9!abcdef")
	assert.Contains(t, body, "Hola Ana")

	subject, body = PasswordChangedMessage("Olga")
	assert.NotEmpty(t, subject)
	assert.Contains(t, body, "Olga")
}
