//go:generate go run go.uber.org/mock/mockgen -source=mailer.go -destination=../../mocks/mock_mailer.go -package=mocks
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// Message is one outbound plain-text e-mail. The sender is always the
// administrator account the mailer authenticated with.
type Message struct {
	To      string
	Subject string
	Body    string
}

type IMailer interface {
	Send(ctx context.Context, message Message) error
}

// SMTPMailer delivers messages through an authenticated STARTTLS session,
// the scheme Gmail application passwords expect on port 587.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(host string, port int, username, password string) (*SMTPMailer, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: username}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, message Message) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.from, err)
	}
	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	return s.client.DialAndSendWithContext(ctx, msg)
}
