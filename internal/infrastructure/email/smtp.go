package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/hireloop/hireloop/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // used to build login links
}

// SMTPConfigFrom maps the email section of the application config.
func SMTPConfigFrom(cfg config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     baseURL,
	}
}

type SMTPEmailService struct {
	config SMTPConfig
	sender gomail.Sender
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// newSMTPEmailServiceWithSender bypasses the SMTP dialer.
func newSMTPEmailServiceWithSender(config SMTPConfig, sender gomail.Sender) *SMTPEmailService {
	return &SMTPEmailService{config: config, sender: sender}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, fullName, companyName, tenantSlug string) error {
	loginURL := fmt.Sprintf("%s/auth/login?tenant=%s", s.config.BaseURL, tenantSlug)
	greeting := "Hi"
	if fullName != "" {
		greeting = "Hi " + fullName
	}

	subject := fmt.Sprintf("Welcome to Hireloop, %s", companyName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s,</h2>
			<p>Your payment was confirmed and the %s workspace is ready.</p>
			<p><a href="%s">Sign in to Hireloop</a></p>
			<p>Your workspace address is <strong>%s</strong>.</p>
		</body>
		</html>
	`, greeting, companyName, loginURL, tenantSlug)

	plainBody := fmt.Sprintf(`
%s,

Your payment was confirmed and the %s workspace is ready.

Sign in at:
%s

Your workspace address is %s.
	`, greeting, companyName, loginURL, tenantSlug)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPaymentFailedEmail(to, amount, invoice string) error {
	billingURL := fmt.Sprintf("%s/billing/payment-method", s.config.BaseURL)

	subject := "Your Hireloop payment failed"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment failed</h2>
			<p>We could not collect $%s for invoice %s.</p>
			<p>Your subscription is past due. Please <a href="%s">update your payment method</a> to keep screening candidates.</p>
		</body>
		</html>
	`, amount, invoice, billingURL)

	plainBody := fmt.Sprintf(`
Payment failed

We could not collect $%s for invoice %s.

Your subscription is past due. Update your payment method at:
%s
	`, amount, invoice, billingURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	var err error
	if s.sender != nil {
		err = gomail.Send(s.sender, m)
	} else {
		err = s.dialer.DialAndSend(m)
	}
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
