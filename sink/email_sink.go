package sink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"santa-lab/domain"
	"santa-lab/errors"
	"santa-lab/infrastructure/mail"

	"github.com/samber/lo"
)

// EmailSink delivers one message per participant, then a recap to the
// administrator. Delivery stops at the first transport failure; messages
// already sent are not recalled.
type EmailSink struct {
	mailer       mail.IMailer
	registry     *domain.Registry
	adminEmail   string
	extraContent string
	sendTimeout  time.Duration
	log          *slog.Logger
}

func NewEmailSink(
	mailer mail.IMailer,
	registry *domain.Registry,
	adminEmail string,
	extraContent string,
	sendTimeout time.Duration,
	log *slog.Logger,
) EmailSink {
	return EmailSink{
		mailer:       mailer,
		registry:     registry,
		adminEmail:   adminEmail,
		extraContent: extraContent,
		sendTimeout:  sendTimeout,
		log:          log,
	}
}

func (e EmailSink) Consume(ctx context.Context, run domain.AssignmentRun) error {
	pairs := run.Assignment.Pairs(e.registry)

	for _, pair := range pairs {
		message := mail.Message{
			To:      pair.Giver.Email,
			Subject: fmt.Sprintf("Alert: Secret Santa Assignment (%s)", run.ID),
			Body:    e.participantBody(pair),
		}
		if err := e.send(ctx, message); err != nil {
			return fmt.Errorf("%w: %v", errors.ErrNotAllMessagesSent, err)
		}
		e.log.Info("Sent assignment", "to", pair.Giver.Name)
	}

	recap := mail.Message{
		To:      e.adminEmail,
		Subject: fmt.Sprintf("Secret Santa Assignments (%s)", run.ID),
		Body:    summaryBody(pairs),
	}
	if err := e.send(ctx, recap); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotAllMessagesSent, err)
	}
	e.log.Info("Sent all assignments", "to", e.adminEmail)

	return nil
}

// send applies the per-message deadline; the parent context still cancels
// the whole batch.
func (e EmailSink) send(ctx context.Context, message mail.Message) error {
	if e.sendTimeout <= 0 {
		return e.mailer.Send(ctx, message)
	}
	sendCtx, cancel := context.WithTimeout(ctx, e.sendTimeout)
	defer cancel()
	return e.mailer.Send(sendCtx, message)
}

// participantBody tells one giver who they drew. Extra content, when
// configured, rides along after a blank line.
func (e EmailSink) participantBody(pair domain.Pair) string {
	body := fmt.Sprintf("%s will give to %s.", pair.Giver.Name, pair.Receiver.Name)
	if e.extraContent != "" {
		body = fmt.Sprintf("%s\r\n\r\n%s", body, e.extraContent)
	}
	return body
}

func summaryBody(pairs []domain.Pair) string {
	lines := lo.Map(pairs, func(pair domain.Pair, _ int) string {
		return fmt.Sprintf("%s will give to %s.", pair.Giver.Name, pair.Receiver.Name)
	})
	return strings.Join(lines, "\n")
}
