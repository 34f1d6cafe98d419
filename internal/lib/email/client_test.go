package email

import (
	"errors"
	"testing"

	"github.com/deppfellow/bff-service/internal/config"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestRender_EscapesHTML(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{
		"AppName":  "bff-service",
		"Username": "<script>",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendWelcomeEmail(t *testing.T) {
	cfg := config.DefaultConfig()
	logger := zerolog.Nop()
	sender := &fakeSender{}

	client := NewClientWithSender(sender, cfg, &logger)
	require.NoError(t, client.SendWelcomeEmail("alice@example.com", "alice"))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, msg.To)
	assert.Equal(t, "bff-service <onboarding@resend.dev>", msg.From)
	assert.Equal(t, "Welcome to bff-service!", msg.Subject)
	assert.Contains(t, msg.Html, "Welcome, alice!")
}

func TestSendWelcomeEmail_SenderError(t *testing.T) {
	cfg := config.DefaultConfig()
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("boom")}, cfg, &logger)

	err := client.SendWelcomeEmail("alice@example.com", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
