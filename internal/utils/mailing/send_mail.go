package mailing

import (
	"fmt"
	"strconv"

	"cooknextdoor/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" {
		// Mailing is optional; deployments without SMTP just skip it.
		return nil
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func SendOrderNotification(toEmail string, mealName string, quantity int, totalPrice float64) error {
	subject := "New order on CookNextDoor"
	body := fmt.Sprintf(
		"<p>You have a new order:</p><p><b>%s</b> × %d — total $%.2f</p><p>Open your seller dashboard to confirm it.</p>",
		mealName, quantity, totalPrice,
	)
	return SendMail(toEmail, subject, body)
}
