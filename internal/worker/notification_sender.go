package worker

import (
	"context"
	"fmt"

	"github.com/cityinfo/backend/internal/config"
	emailProvider "github.com/cityinfo/backend/pkg/email"
)

type notificationSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newNotificationSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *notificationSender {
	return &notificationSender{
		sender: sender,
		config: config,
	}
}

type pointOfInterestDeletedInput struct {
	ID     int64
	CityID int64
	Name   string
}

func (s *notificationSender) SendPointOfInterestDeleted(ctx context.Context, id, cityID int64, name string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Point of interest deleted"

	templateInput := pointOfInterestDeletedInput{ID: id, CityID: cityID, Name: name}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: s.config.AdminTo}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.PointOfInterestDeleted, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
