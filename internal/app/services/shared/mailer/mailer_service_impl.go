package mailer

import (
	"fmt"
	"net/smtp"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/drivers/mailer"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type mailerService struct {
	Client *mailer.SMTPClient
	Log    *zap.Logger
}

func NewMailerService(client *mailer.SMTPClient, logger *zap.Logger) contracts.BookingNotifier {
	return &mailerService{
		Client: client,
		Log:    logger,
	}
}

func (svc *mailerService) NotifyBookingConfirmed(booking *models.Booking) error {
	if !svc.Client.IsConfigured() {
		svc.Log.Info("mailerService.NotifyBookingConfirmed relay not configured, skipping email send",
			zap.String(constvars.LoggingDoctorEmailKey, booking.DoctorEmail),
			zap.String(constvars.LoggingPatientEmailKey, booking.PatientEmail),
			zap.String(constvars.LoggingSlotKey, booking.Slot),
		)
		return nil
	}

	patientSubject := fmt.Sprintf(constvars.EmailBookingPatientSubjectFormat, booking.DoctorName, booking.Specialization)
	patientBody := fmt.Sprintf(constvars.EmailBookingPatientBodyFormat,
		booking.PatientName,
		booking.DoctorName,
		booking.Specialization,
		booking.Slot,
		booking.MeetingLink,
	)
	if err := svc.sendEmail(booking.PatientEmail, patientSubject, patientBody); err != nil {
		return err
	}

	doctorSubject := fmt.Sprintf(constvars.EmailBookingDoctorSubjectFormat, booking.Specialization)
	doctorBody := fmt.Sprintf(constvars.EmailBookingDoctorBodyFormat,
		booking.DoctorName,
		booking.Slot,
		booking.PatientName,
		booking.PatientEmail,
		booking.MeetingLink,
	)
	return svc.sendEmail(booking.DoctorEmail, doctorSubject, doctorBody)
}

func (svc *mailerService) sendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("mailerService.sendEmail delivered",
		zap.String(constvars.LoggingRecipientKey, to),
	)
	return nil
}
