package mailing

import (
	"RecipeHub-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

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

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

func SendVerificationMail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Welcome to RecipeHub!</p>"+
			"<p>Please confirm your email address by clicking the link below:</p>"+
			"<p><a href=\"%s\">Verify my email</a></p>",
		link,
	)
	return SendMail(toEmail, "Verify your RecipeHub account", body)
}

func SendResetPasswordMail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	link := fmt.Sprintf("%s/reset-password?token=%s", emailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>We received a request to reset your RecipeHub password.</p>"+
			"<p>If this was you, follow the link below. The link expires in one hour.</p>"+
			"<p><a href=\"%s\">Reset my password</a></p>",
		link,
	)
	return SendMail(toEmail, "Reset your RecipeHub password", body)
}
