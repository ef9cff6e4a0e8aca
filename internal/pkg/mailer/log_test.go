package mailer

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogMailer_SendEstimate(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	err := LogMailer{}.SendEstimate(context.Background(), "client@example.com", "Estimate: Bathroom Remodel", []byte("%PDF-1.7"))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "to=client@example.com")
	assert.Contains(t, buf.String(), "pdf_bytes=8")
}
