package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// BookingEmail carries everything the confirmation template needs.
type BookingEmail struct {
	Recipient          string
	GuestName          string
	ReferenceCode      string
	ConfirmationNumber string
	RoomName           string
	RoomNumber         string
	CheckIn            string
	CheckOut           string
	Nights             int
	Total              float64
}

// SendBookingConfirmationEmail sends a multipart plain+HTML confirmation.
// When SMTP is not configured the message is logged instead, so a missing
// mail server never breaks a booking.
func SendBookingConfirmationEmail(m BookingEmail) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := EnvOrDefault("SMTP_FROM_NAME", "Reservations")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s booking:%s confirmation:%s room:%s total:%.2f",
			MaskEmail(m.Recipient), m.ReferenceCode, m.ConfirmationNumber, m.RoomNumber, m.Total)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guest := safe(m.GuestName)
	ref := safe(m.ReferenceCode)
	conf := safe(m.ConfirmationNumber)
	if conf == "" {
		conf = "assigned on confirmation"
	}
	room := safe(m.RoomName)
	if m.RoomNumber != "" {
		room = fmt.Sprintf("%s (Room %s)", room, safe(m.RoomNumber))
	}

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	subject := fmt.Sprintf("Booking Received — %s", ref)
	boundary := "----=_HOTEL_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for booking with us! Here are your booking details:\n\n"+
			"Booking Reference: %s\n"+
			"Confirmation Number: %s\n"+
			"Room: %s\n"+
			"Check-In: %s\n"+
			"Check-Out: %s\n"+
			"Nights: %d\n"+
			"Total: %.2f\n\n"+
			"If you have any questions, feel free to contact us.\n\n"+
			"Best regards,\n%s",
		guest, ref, conf, room, m.CheckIn, m.CheckOut, m.Nights, m.Total, fromName,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Received</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:700px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:180px; display:inline-block; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking Received</h2>
    <p>Dear %s,</p>
    <p>Thank you for choosing our hotel. Below are your booking details:</p>
    <p><span class="label">Booking Reference:</span> %s</p>
    <p><span class="label">Confirmation Number:</span> %s</p>
    <p><span class="label">Room:</span> %s</p>
    <p><span class="label">Check-In:</span> %s</p>
    <p><span class="label">Check-Out:</span> %s</p>
    <p><span class="label">Nights:</span> %d</p>
    <p><span class="label">Total:</span> %.2f</p>
    <p>If you have any questions, feel free to contact us.</p>
    <p>Best regards,<br>%s</p>
  </div>
</div>
</body>
</html>`,
		guest, ref, conf, room, m.CheckIn, m.CheckOut, m.Nights, m.Total, fromName,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", m.Recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")
	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return smtp.SendMail(addr, auth, smtpUser, []string{m.Recipient}, []byte(sb.String()))
}

// MaskEmail returns a masked email for safe log output.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	if len(local) > 2 {
		local = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		local = local[:1] + "*"
	}
	return local + "@" + parts[1]
}
