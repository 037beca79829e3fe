package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"talent-portal-backend/config"
	"talent-portal-backend/internal/domain"
)

// Service sends transactional emails via SMTP. It implements
// domain.Notifier; callers should check IsConfigured before relying on
// delivery.
type Service struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  cfg.SMTPFromName,
	}
}

const emailStyle = `<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background: #f9f9f9; }
    .highlight { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
    .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
</style>`

const welcomeTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Welcome</title>` + emailStyle + `</head>
<body>
    <div class="container">
        <div class="header"><h1>Welcome, {{.Name}}!</h1></div>
        <div class="content">
            <p>Your account has been created successfully.</p>
            <p>You can now sign in and complete your profile to be considered for open positions.</p>
        </div>
        <div class="footer"><p>This is an automated message, please do not reply.</p></div>
    </div>
</body>
</html>`

const loginAlertTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>New Sign-In</title>` + emailStyle + `</head>
<body>
    <div class="container">
        <div class="header"><h1>New Sign-In Detected</h1></div>
        <div class="content">
            <p>Hello {{.Name}},</p>
            <div class="highlight">A sign-in to your account occurred at {{.At}}.</div>
            <p>If this was not you, please change your password immediately.</p>
        </div>
        <div class="footer"><p>This is an automated message, please do not reply.</p></div>
    </div>
</body>
</html>`

const interviewScheduledTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Interview Scheduled</title>` + emailStyle + `</head>
<body>
    <div class="container">
        <div class="header"><h1>You Have Been Selected for an Interview</h1></div>
        <div class="content">
            <p>Hello {{.CandidateName}},</p>
            <p>{{.ManagerName}} has scheduled an interview with you.</p>
            <div class="highlight">Date: {{.Date}}<br>Time: {{.Time}}</div>
        </div>
        <div class="footer"><p>This is an automated message, please do not reply.</p></div>
    </div>
</body>
</html>`

const interviewRescheduledTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Interview Rescheduled</title>` + emailStyle + `</head>
<body>
    <div class="container">
        <div class="header"><h1>Your Interview Has Been Rescheduled</h1></div>
        <div class="content">
            <p>Hello {{.CandidateName}},</p>
            <p>{{.ManagerName}} has moved your interview from {{.OldDate}} at {{.OldTime}}.</p>
            <div class="highlight">New date: {{.Date}}<br>New time: {{.Time}}</div>
        </div>
        <div class="footer"><p>This is an automated message, please do not reply.</p></div>
    </div>
</body>
</html>`

// SendWelcome emails the new user after registration.
func (s *Service) SendWelcome(user *domain.User) error {
	return s.send(user.Email, "Welcome to the Talent Portal", welcomeTemplate, map[string]string{
		"Name": user.Name,
	})
}

// SendLoginAlert notifies the user of a successful sign-in.
func (s *Service) SendLoginAlert(user *domain.User, at time.Time) error {
	return s.send(user.Email, "New sign-in to your account", loginAlertTemplate, map[string]string{
		"Name": user.Name,
		"At":   at.Format("02/01/2006 15:04"),
	})
}

// SendInterviewScheduled notifies the candidate of a new interview slot.
func (s *Service) SendInterviewScheduled(notice domain.InterviewNotice) error {
	return s.send(notice.CandidateEmail, "Interview scheduled", interviewScheduledTemplate, notice)
}

// SendInterviewRescheduled notifies the candidate of a moved interview slot.
func (s *Service) SendInterviewRescheduled(notice domain.InterviewNotice) error {
	return s.send(notice.CandidateEmail, "Interview rescheduled", interviewRescheduledTemplate, notice)
}

func (s *Service) send(to, subject, tmplText string, data interface{}) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email service not configured")
	}

	tmpl, err := template.New("email").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromName,
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
