package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"notesbytes_settlement/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

var (
	ErrTemplateNotFound = errors.New("notification template not found")
	ErrTemplateInactive = errors.New("notification template inactive")
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailNotifier renders a CMS-managed template and delivers it over
// SMTP. Callers treat delivery as best-effort; this type just reports
// honestly.

type EmailNotifier struct {
	templates interfaces.IEmailTemplateRepository
	sender    mailSender
	from      string
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

// NewEmailNotifierFromEnv reads SMTP settings from the environment
// (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD, SMTP_FROM).
func NewEmailNotifierFromEnv(templates interfaces.IEmailTemplateRepository) *EmailNotifier {
	host := getenvDefault("SMTP_HOST", "localhost")
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	dialer := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return &EmailNotifier{
		templates: templates,
		sender:    dialer,
		from:      getenvDefault("SMTP_FROM", "no-reply@notesbytes.local"),
	}
}

func NewEmailNotifier(templates interfaces.IEmailTemplateRepository, sender mailSender, from string) *EmailNotifier {
	return &EmailNotifier{templates: templates, sender: sender, from: from}
}

func (n *EmailNotifier) Send(ctx context.Context, to string, templateKey string, vars map[string]string) error {
	tpl, err := n.templates.GetByKey(ctx, templateKey)
	if err != nil {
		return fmt.Errorf("load template %s: %w", templateKey, err)
	}
	if tpl.Key == "" {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, templateKey)
	}
	if !tpl.Active {
		return fmt.Errorf("%w: %s", ErrTemplateInactive, templateKey)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", render(tpl.Subject, vars))
	msg.SetBody("text/html", render(tpl.Body, vars))

	if err := n.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %s to %s: %w", templateKey, to, err)
	}
	log.Printf("[notify][email] sent template=%s to=%s", templateKey, to)
	return nil
}

// render substitutes {{name}} placeholders. Unknown placeholders are
// left in place so a template/variable mismatch is visible in the
// delivered mail rather than silently blanked.
func render(text string, vars map[string]string) string {
	for k, v := range vars {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
