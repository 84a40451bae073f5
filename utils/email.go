package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SendReservationConfirmedEmail sends the confirmation email after a deposit
// payment. When SMTP is not configured the message is logged instead, so
// development and test environments keep working.
func SendReservationConfirmedEmail(recipient, fullName, code, roomType string, amount float64) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Reservas")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.WithFields(log.Fields{
			"to":     recipient,
			"code":   code,
			"amount": amount,
		}).Info("[MOCK EMAIL] reservation confirmed")
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	fullName = safe(fullName)
	code = safe(code)
	roomType = safe(roomType)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your deposit payment was received and your reservation is confirmed.\n\n"+
			"Confirmation code: %s\n"+
			"Room: %s\n"+
			"Deposit paid: %.2f\n\n"+
			"Keep this code; you will need it together with your RUT to look up "+
			"the reservation.\n\n"+
			"Best regards,\n%s",
		fullName, code, roomType, amount, fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, smtpUser))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: Reservation confirmed - %s\r\n", code))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.WithError(err).WithField("to", recipient).Error("failed to send confirmation email")
		return err
	}
	return nil
}
