// Package alert emails operators when a run records failed sites.
// Delivery problems are reported to the caller as errors and must never
// fail the probing run.
package alert

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"canary/config"
	"canary/internals/modules/probe"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string

	log *zerolog.Logger
}

// NewMailerFromEnv reads SMTP settings from the environment
// (SMTP_SERVER, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD).
func NewMailerFromEnv(log *zerolog.Logger) *Mailer {
	v := viper.New()
	v.SetDefault("SMTP_PORT", 587)
	v.AutomaticEnv()

	return &Mailer{
		Host:     v.GetString("SMTP_SERVER"),
		Port:     v.GetInt("SMTP_PORT"),
		Username: v.GetString("SMTP_USERNAME"),
		Password: v.GetString("SMTP_PASSWORD"),
		log:      log,
	}
}

// Send composes and delivers the failure summary over TLS-upgraded SMTP.
func (m *Mailer) Send(failed []probe.Result, notif config.Notification) error {
	if m.Host == "" || m.Username == "" || m.Password == "" {
		return errors.New("email configuration missing in environment variables")
	}
	if notif.Email == "" {
		return errors.New("no notification recipient configured")
	}

	subject := ComposeSubject(failed, notif)
	body := ComposeBody(failed)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.Username)
	fmt.Fprintf(&msg, "To: %s\r\n", notif.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: m.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.Username); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := client.Rcpt(notif.Email); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg.String())); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("smtp quit: %w", err)
	}

	m.log.Info().Str("recipient", notif.Email).Msg("alert email sent")
	return nil
}
