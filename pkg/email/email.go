// Package email is a small SMTP client
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Config SMTP settings
type Config struct {
	Host     string `koanf:"host"`     // e.g. smtp.gmail.com
	Port     int    `koanf:"port"`     // 587 (STARTTLS) or 465
	Username string `koanf:"username"` // sender account
	Password string `koanf:"password"` // password or app token
	UseTLS   bool   `koanf:"tls"`
}

// Message an outgoing mail
type Message struct {
	From        string // "CampusLearn <noreply@example.com>"
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	Body        string
	ContentType string // defaults to text/plain
}

// Client SMTP client
type Client struct {
	config *Config
}

// NewClient creates a client, defaulting the port to 587
func NewClient(config *Config) *Client {
	if config.Port == 0 {
		config.Port = 587
	}
	return &Client{config: config}
}

// Send delivers msg to every To/Cc/Bcc recipient
func (c *Client) Send(msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	recipients := append([]string{}, msg.To...)
	recipients = append(recipients, msg.Cc...)
	recipients = append(recipients, msg.Bcc...)

	auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)
	body := msg.bytes()

	if c.config.UseTLS || c.config.Port == 587 {
		return c.sendWithTLS(addr, auth, envelopeAddress(msg.From), recipients, body)
	}

	return smtp.SendMail(addr, auth, envelopeAddress(msg.From), recipients, body)
}

func (m *Message) validate() error {
	if m.From == "" {
		return fmt.Errorf("sender is empty")
	}
	if len(m.To) == 0 {
		return fmt.Errorf("no recipients")
	}
	if m.Subject == "" {
		return fmt.Errorf("subject is empty")
	}
	return nil
}

// bytes renders headers in a fixed order followed by the body
func (m *Message) bytes() []byte {
	contentType := m.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.To, ", "))
	if len(m.Cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(m.Cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(m.Body)
	return []byte(b.String())
}

// envelopeAddress strips a display name: "Name <a@b>" -> "a@b"
func envelopeAddress(from string) string {
	if i := strings.LastIndex(from, "<"); i >= 0 {
		if j := strings.LastIndex(from, ">"); j > i {
			return from[i+1 : j]
		}
	}
	return strings.TrimSpace(from)
}

func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("rcpt %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}

	return client.Quit()
}

// SendHTML sends a single-recipient HTML mail
func (c *Client) SendHTML(from, to, subject, htmlBody string) error {
	return c.Send(&Message{
		From:        from,
		To:          []string{to},
		Subject:     subject,
		Body:        htmlBody,
		ContentType: "text/html; charset=UTF-8",
	})
}
