package mailer

import (
	"fmt"
	"html"
	"strings"

	"logfiber-be/pkg/alerting"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAlarm(addresses []string, p *alerting.Payload) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendAlarm(addresses []string, p *alerting.Payload) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", addresses...)
	m.SetHeader("Subject", fmt.Sprintf("[%s] %s alarm in %s", strings.ToUpper(p.Level), p.LogType, p.ProjectName))

	m.SetBody("text/html", alarmBody(p))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alarm email: %w", err)
	}

	return nil
}

// alarmBody renders the HTML alarm notification. Every payload field comes
// from ingested log content, so all of them are escaped before interpolation.
func alarmBody(p *alerting.Payload) string {
	var stackBlock string
	if p.StackTrace != "" {
		stackBlock = fmt.Sprintf(`<pre style="background: #f4f4f4; padding: 10px; overflow-x: auto;">%s</pre>`, html.EscapeString(p.StackTrace))
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s alarm in %s</h2>
			<p><b>Level:</b> %s &nbsp; <b>Environment:</b> %s &nbsp; <b>Host:</b> %s</p>
			<p><b>Time:</b> %s</p>
			<p>%s</p>
			%s
			<a href="%s" style="background-color: #D9534F; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open log</a>
		</div>
	`, html.EscapeString(p.LogType), html.EscapeString(p.ProjectName),
		html.EscapeString(p.Level), html.EscapeString(p.Environment), html.EscapeString(p.Hostname),
		html.EscapeString(p.Timestamp), html.EscapeString(p.Message), stackBlock, p.Link)
}
