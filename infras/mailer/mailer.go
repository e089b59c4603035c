package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"dronline/config"
	"dronline/infras/otel"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName    = "mailer"
	otelAttrSubject  = "mail.subject"
	mimeBoundary     = "dronline-mail-boundary"
	headerSeparator  = "\r\n"
	contentTypeHTML  = "text/html; charset=\"UTF-8\""
	contentTypePlain = "text/plain; charset=\"UTF-8\""
)

// Mailer delivers transactional email. Send reports delivery as a boolean so
// callers can log failures without propagating them; email must never fail a
// business operation.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) bool
	IsEnabled() bool
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Mailer {
	if !cfg.SMTP.Enabled {
		log.Warn().Msg("SMTP disabled, outgoing mail will be logged only")
	}

	return &smtpMailer{
		config: cfg,
		otel:   ot,
	}
}

func (m *smtpMailer) IsEnabled() bool {
	return m.config.SMTP.Enabled
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) bool {
	_, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".Send")
	defer scope.End()

	scope.SetAttribute(otelAttrSubject, subject)

	if !m.config.SMTP.Enabled {
		log.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP disabled, skipping mail delivery")

		return true
	}

	msg := m.buildMessage(to, subject, htmlBody)
	addr := net.JoinHostPort(m.config.SMTP.Host, m.config.SMTP.Port)
	auth := smtp.PlainAuth("", m.config.SMTP.Username, m.config.SMTP.Password, m.config.SMTP.Host)

	if err := smtp.SendMail(addr, auth, m.config.SMTP.From, []string{to}, []byte(msg)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send mail")

		return false
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")

	return true
}

// buildMessage assembles a multipart/alternative message with a plain-text
// fallback derived from the HTML body.
func (m *smtpMailer) buildMessage(to, subject, htmlBody string) string {
	from := m.config.SMTP.From
	if m.config.SMTP.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.SMTP.FromName, m.config.SMTP.From)
	}

	var b strings.Builder

	b.WriteString("From: " + from + headerSeparator)
	b.WriteString("To: " + to + headerSeparator)
	b.WriteString("Subject: " + subject + headerSeparator)
	b.WriteString("MIME-Version: 1.0" + headerSeparator)
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q%s", mimeBoundary, headerSeparator))
	b.WriteString(headerSeparator)

	b.WriteString("--" + mimeBoundary + headerSeparator)
	b.WriteString("Content-Type: " + contentTypePlain + headerSeparator)
	b.WriteString(headerSeparator)
	b.WriteString(stripTags(htmlBody) + headerSeparator)

	b.WriteString("--" + mimeBoundary + headerSeparator)
	b.WriteString("Content-Type: " + contentTypeHTML + headerSeparator)
	b.WriteString(headerSeparator)
	b.WriteString(htmlBody + headerSeparator)

	b.WriteString("--" + mimeBoundary + "--" + headerSeparator)

	return b.String()
}

func stripTags(html string) string {
	var b strings.Builder

	inTag := false

	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
