package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"unireg/config"
)

// SendEmail delivers one HTML mail over SMTP. Callers treat delivery as
// best effort: failures are logged, never surfaced to the user-facing
// operation that triggered the mail.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: University Registration <%s>\r\n", cfg.EmailSender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", cfg.EmailSender, cfg.Password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, cfg.EmailSender, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1b6ec2; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1a1a2e; line-height: 1.6; }
			.content h2 { color: #1a1a2e; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #1b6ec2; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1b6ec2; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE REGISTRATION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				University Course Registration System.<br>
				This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to the Course Registration System"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your student account has been created successfully.</p>
		<p>You can now browse the course catalog and register for the courses of your semester.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome!", body))
}

// 2. Registration confirmation
func SendRegistrationEmail(email, name, courseName, courseCode string) {
	subject := "Registration Confirmed: " + courseCode
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully registered for <strong>%s</strong> (%s).</p>
		<div class="info-box">
			You can review your registrations anytime from your courses page.
		</div>
	`, name, courseName, courseCode)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registration Successful", body))
}

// 3. Unregistration confirmation
func SendUnregistrationEmail(email, name, courseName, courseCode string) {
	subject := "Registration Cancelled: " + courseCode
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your registration for <strong>%s</strong> (%s) has been cancelled.</p>
		<p>If this was a mistake, you can register again while the course is open.</p>
	`, name, courseName, courseCode)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registration Cancelled", body))
}

// 4. Password reset
func SendPasswordResetEmail(email, name, resetLink string) {
	subject := "Reset your password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Click the button below to choose a new one.</p>
		<a href="%s" class="btn">Reset Password</a>
		<p style="color: #666; font-size: 14px; margin-top: 20px;">
			If you did not request this, you can safely ignore this email.
		</p>
	`, name, resetLink)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}
