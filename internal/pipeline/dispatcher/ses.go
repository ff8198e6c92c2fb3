package dispatcher

import (
	"context"

	"outreach-automation/internal/common/aws"
)

// SESSender delivers mail through AWS SES, as an alternative to direct SMTP.
type SESSender struct {
	client *aws.SESClient
	from   string
}

func NewSESSender(client *aws.SESClient, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) Send(ctx context.Context, to, subject, body string) error {
	return s.client.SendText(ctx, s.from, to, subject, body)
}
