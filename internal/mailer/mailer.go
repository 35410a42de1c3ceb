package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/gestion-eventos/internal/config"
	"github.com/gestion-eventos/internal/metrics"
)

// ErrDisabled is returned by Send when no SMTP credentials are configured.
var ErrDisabled = errors.New("mailer disabled: EMAIL_USER/EMAIL_PASS not set")

// Mailer delivers plain-text notifications through an SMTP relay.
type Mailer struct {
	cfg    config.EmailConfig
	logger zerolog.Logger
	send   func(ctx context.Context, msg *mail.Msg) error
}

func New(cfg config.EmailConfig, logger zerolog.Logger) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
	m.send = m.dialAndSend
	return m
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Enabled()
}

// Send delivers subject and body to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.Enabled() {
		metrics.EmailsSent.WithLabelValues("skipped").Inc()
		m.logger.Warn().Str("to", to).Str("subject", subject).Msg("email skipped, mailer disabled")
		return ErrDisabled
	}

	msg, err := m.buildMessage(to, subject, body)
	if err != nil {
		metrics.EmailsSent.WithLabelValues("failed").Inc()
		return err
	}

	if err := m.send(ctx, msg); err != nil {
		metrics.EmailsSent.WithLabelValues("failed").Inc()
		m.logger.Error().Err(err).Str("to", to).Msg("email delivery failed")
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", m.cfg.Host, m.cfg.Port, err)
	}

	metrics.EmailsSent.WithLabelValues("sent").Inc()
	m.logger.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

func (m *Mailer) buildMessage(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.User); err != nil {
		return nil, fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("error al configurar destinatario: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
