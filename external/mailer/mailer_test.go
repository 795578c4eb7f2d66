package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendWithoutRecipients(t *testing.T) {
	m := New("smtp.example.com", 587, "user", "pass", "alerts@example.com")
	err := m.Send("subject", "<p>body</p>", nil)
	assert.Equal(t, errNoRecipient, err)
}

func TestMessageIsHTML(t *testing.T) {
	msg := newMessage(
		"alerts@example.com",
		"⚠️ CRITICAL COVID-19 ALERT",
		"<h2>Briefing</h2>",
		[]string{"ops@example.com", "health@example.com"},
	)

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	assert.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Content-Type: text/html")
	assert.Contains(t, raw, "ops@example.com")
	assert.Contains(t, raw, "health@example.com")
	assert.Contains(t, raw, "<h2>Briefing</h2>")
}
