package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testConfig() Config {
	return Config{Host: "smtp.example.com", Port: 465, From: "shop@example.com", To: []string{"boss@example.com"}}
}

func TestNewReportMailer_NotConfigured(t *testing.T) {
	_, err := NewReportMailer(Config{Host: "smtp.example.com"})
	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestReportMailer_SendReport(t *testing.T) {
	m, err := NewReportMailer(testConfig())
	require.NoError(t, err)
	fake := &fakeSender{}
	m.dialer = fake

	require.NoError(t, m.SendReport(context.Background(), "2026-01-21", "Day total: 162.50\n"))
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"Shift report 2026-01-21"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"boss@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "orders_2026-01-21.txt")
}

func TestReportMailer_SendReportErrors(t *testing.T) {
	m, _ := NewReportMailer(testConfig())
	m.dialer = &fakeSender{err: errors.New("auth failed")}
	assert.EqualError(t, m.SendReport(context.Background(), "2026-01-21", "x"), "auth failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendReport(ctx, "2026-01-21", "x"), context.Canceled)
}
