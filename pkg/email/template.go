package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template an HTML mail template
type Template struct {
	tmpl *template.Template
}

// NewTemplate parses an HTML template string
func NewTemplate(htmlContent string) (*Template, error) {
	tmpl, err := template.New("email").Parse(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parse mail template: %w", err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Render executes the template with data
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render mail template: %w", err)
	}
	return buf.String(), nil
}

// SendWithTemplate renders tmpl and sends it as HTML
func (c *Client) SendWithTemplate(from, to, subject string, tmpl *Template, data any) error {
	body, err := tmpl.Render(data)
	if err != nil {
		return err
	}
	return c.SendHTML(from, to, subject, body)
}

// NotificationData feeds NotificationTemplate
type NotificationData struct {
	Name  string
	Title string
	Body  string
	Link  string
}

// NotificationTemplate mirrors an in-app notification
const NotificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f3c88; color: #fff; padding: 16px; border-radius: 6px 6px 0 0; }
        .content { background: #f7f8fa; padding: 20px; border-radius: 0 0 6px 6px; }
        .footer { margin-top: 16px; font-size: 12px; color: #888; }
    </style>
</head>
<body>
<div class="container">
    <div class="header"><strong>CampusLearn</strong></div>
    <div class="content">
        <p>Hi {{.Name}},</p>
        <h3>{{.Title}}</h3>
        <p>{{.Body}}</p>
        {{if .Link}}<p><a href="{{.Link}}">Open in CampusLearn</a></p>{{end}}
    </div>
    <div class="footer">You receive this because you have an account on CampusLearn.</div>
</div>
</body>
</html>`
