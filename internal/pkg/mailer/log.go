// Package mailer provides estimate delivery transports. The only shipped
// implementation writes to the process log; real SMTP delivery is wired in
// deployment environments that carry credentials.
package mailer

import (
	"context"
	"log"
)

// LogMailer records outgoing estimate emails on the process log instead of
// delivering them. It satisfies estimate.Mailer and keeps the send-email
// endpoint functional in environments without a mail transport.
type LogMailer struct{}

func (LogMailer) SendEstimate(ctx context.Context, to, subject string, pdf []byte) error {
	log.Printf("mail: delivering estimate to=%s subject=%q pdf_bytes=%d", to, subject, len(pdf))
	return nil
}
