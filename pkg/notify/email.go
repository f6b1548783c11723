package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages; *gomail.Dialer satisfies it
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailConfig holds SMTP settings for the operator mailbox
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// EmailNotifier mails new bookings to the operator inbox
type EmailNotifier struct {
	sender Sender
	from   string
	to     string
}

// NewEmailNotifier creates an SMTP notifier
func NewEmailNotifier(config EmailConfig) *EmailNotifier {
	from := config.From
	if from == "" {
		from = config.Username
	}
	return NewEmailNotifierWithSender(gomail.NewDialer(config.Host, config.Port, config.Username, config.Password), from, config.To)
}

// NewEmailNotifierWithSender creates a notifier on an existing sender
func NewEmailNotifierWithSender(sender Sender, from, to string) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from, to: to}
}

// Name implements Notifier
func (e *EmailNotifier) Name() string {
	return "email"
}

// Notify mails the summary of newly created bookings; other events are ignored
func (e *EmailNotifier) Notify(ctx context.Context, event BookingEvent) error {
	if event.Type != EventBookingCreated {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	subject := fmt.Sprintf("New booking: %s, %s", event.Summary.RouteTitle, event.Summary.Date)
	m := e.message(subject, BookingMessage(event.Summary))
	if event.Summary.GuestEmail != "" {
		m.SetHeader("Reply-To", event.Summary.GuestEmail)
	}
	if err := e.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}
	return nil
}

// Send mails a plain-text message to the operator
func (e *EmailNotifier) Send(subject, body string) error {
	if err := e.sender.DialAndSend(e.message(subject, body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (e *EmailNotifier) message(subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", e.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}
