package email

import (
	"fmt"
	"net/smtp"

	"github.com/example/storefront/internal/model"
)

// Sender is the notification collaborator used for best-effort
// follow-ups after a successful remote write
type Sender interface {
	SendOrderConfirmation(to string, order model.Order) error
	SendNewsletterWelcome(to string) error
	SendContactAck(to, name string) error
}

// Service sends notifications via SMTP
type Service struct {
	host string
	port string
	from string
}

// NewService creates a new email service
func NewService(host, port, from string) *Service {
	return &Service{
		host: host,
		port: port,
		from: from,
	}
}

// SendOrderConfirmation sends an order confirmation email
func (s *Service) SendOrderConfirmation(to string, order model.Order) error {
	subject := fmt.Sprintf("Order confirmation - %s", order.OrderNumber)
	body := BuildOrderConfirmationBody(order)
	return s.send(to, subject, body)
}

// SendNewsletterWelcome sends the newsletter welcome email
func (s *Service) SendNewsletterWelcome(to string) error {
	return s.send(to, "Welcome to our newsletter", BuildNewsletterWelcomeBody(to))
}

// SendContactAck acknowledges a contact form submission
func (s *Service) SendContactAck(to, name string) error {
	return s.send(to, "We received your message", BuildContactAckBody(name))
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg))
}
