package notification

import (
	"fmt"

	"vitago/config"
	"vitago/models"
	"vitago/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// NotificationService delivers booking mail to the parties of a booking.
type NotificationService interface {
	SendBookingConfirmation(booking models.Booking, recipient string) error
	SendBookingReminder(booking models.Booking, recipient string) error
}

// MailNotificationService sends notifications over SMTP.
type MailNotificationService struct{}

var _ NotificationService = (*MailNotificationService)(nil)

func (s *MailNotificationService) send(recipient, subject, body string) error {
	cfg := config.AppConfig

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.MailFrom)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		utils.GetLogger().Error("failed to send mail",
			zap.String("recipient", recipient), zap.String("subject", subject), zap.Error(err))
		return fmt.Errorf("failed to send mail to %s: %w", recipient, err)
	}
	return nil
}

func (s *MailNotificationService) SendBookingConfirmation(booking models.Booking, recipient string) error {
	subject := "Your Vitago booking is confirmed"
	body := fmt.Sprintf(
		"Your %s booking on %s at %s has been accepted.\n\nBooking reference: %s\n",
		booking.ServiceType, booking.Date, booking.StartTime, booking.ID)
	return s.send(recipient, subject, body)
}

func (s *MailNotificationService) SendBookingReminder(booking models.Booking, recipient string) error {
	subject := "Reminder: upcoming Vitago booking"
	body := fmt.Sprintf(
		"You have a %s booking tomorrow, %s at %s.\n\nBooking reference: %s\n",
		booking.ServiceType, booking.Date, booking.StartTime, booking.ID)
	return s.send(recipient, subject, body)
}
