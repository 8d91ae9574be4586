package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"piecework_tracker/internal/usecase/interfaces"
	"piecework_tracker/pkg/logger"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("report mailer not configured")

// Config is the SMTP account reports are sent through.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       []string
}

// Enabled reports whether enough settings are present to send mail.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Host) != "" && strings.TrimSpace(c.From) != "" && len(c.To) > 0
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// ReportMailer e-mails rendered shift reports as plain text.
type ReportMailer struct {
	cfg    Config
	dialer sender
}

var _ interfaces.IReportMailer = (*ReportMailer)(nil)

func NewReportMailer(cfg Config) (*ReportMailer, error) {
	if !cfg.Enabled() {
		return nil, ErrMailerNotConfigured
	}
	return &ReportMailer{cfg: cfg, dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}, nil
}

func (m *ReportMailer) SendReport(ctx context.Context, date string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To...)
	msg.SetHeader("Subject", fmt.Sprintf("Shift report %s", date))
	msg.SetBody("text/plain", body)
	msg.Attach(fmt.Sprintf("orders_%s.txt", date), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.FromContext(ctx).Warnw("[report][mailer] send failed", "date", date, "err", err)
		return err
	}
	logger.FromContext(ctx).Infow("[report][mailer] sent", "date", date, "to", strings.Join(m.cfg.To, ","))
	return nil
}
