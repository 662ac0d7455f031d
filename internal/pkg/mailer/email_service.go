package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReportAlert(toEmail, reporterEmail, description string, count int) error
	SendWithdrawalReceipt(toEmail, method, destination string, amount int) error
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

// SendReportAlert notifies the infrastructure team of a confirmed damage
// report. Count > 1 means the same description was re-reported.
func (s *emailService) SendReportAlert(toEmail, reporterEmail, description string, count int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Confirmed Infrastructure Damage Report")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Infrastructure Damage Confirmed</h2>
			<p>A student report has been verified by image analysis.</p>
			<p><b>Reported by:</b> %s</p>
			<p><b>Description:</b> %s</p>
			<p><b>Times reported:</b> %d</p>
			<p>Please schedule an inspection.</p>
		</div>
	`, reporterEmail, description, count)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send report alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Report alert sent to %s\n", toEmail)
	return nil
}

// SendWithdrawalReceipt confirms a credit redemption back to the student.
func (s *emailService) SendWithdrawalReceipt(toEmail, method, destination string, amount int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Credit Redemption Request")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Redemption Received</h2>
			<p>We received your request to redeem <b>%d credits</b>.</p>
			<p><b>Method:</b> %s</p>
			<p><b>Destination:</b> %s</p>
			<p>Processing usually takes 1-2 business days.</p>
			<p>If you didn't request this, please contact support.</p>
		</div>
	`, amount, method, destination)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Withdrawal receipt sent to %s\n", toEmail)
	return nil
}
