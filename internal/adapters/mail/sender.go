// Package mail delivers moderation notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/pyar/jobboard/config"
	"github.com/pyar/jobboard/internal/domain/model"
)

// Sender sends plain-text notification mail through an SMTP relay.
type Sender struct {
	cfg config.MailConfig
}

// NewSender creates a Sender from the mail configuration.
func NewSender(cfg config.MailConfig) *Sender {
	cfg.Sanitize()
	return &Sender{cfg: cfg}
}

// SendJobInactivated notifies the posting contact that their job was taken
// down, including the moderation reason and optional comment.
func (s *Sender) SendJobInactivated(ctx context.Context, to string, job *model.Job, reason, comment string) error {
	if !s.cfg.Enabled {
		return nil
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("set mail sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set mail recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("[PyAr] Tu oferta %q fue dada de baja", job.Title))
	msg.SetBodyString(gomail.TypeTextPlain, inactivationBody(job, reason, comment))

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *Sender) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(s.cfg.Timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	return gomail.NewClient(s.cfg.Host, opts...)
}

// inactivationBody renders the plain-text notification sent to the posting
// contact when a moderator takes a job down.
func inactivationBody(job *model.Job, reason, comment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola,\n\n")
	fmt.Fprintf(&b, "Tu oferta de trabajo %q fue dada de baja del sitio.\n\n", job.Title)
	fmt.Fprintf(&b, "Motivo: %s\n", reason)
	if comment != "" {
		fmt.Fprintf(&b, "Comentario del moderador: %s\n", comment)
	}
	fmt.Fprintf(&b, "\nSi crees que se trata de un error, responde a este correo.\n\nEl equipo de PyAr\n")
	return b.String()
}
