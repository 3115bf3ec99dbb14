package worker

import (
	"context"

	"github.com/cityinfo/backend/internal/config"
	emailProvider "github.com/cityinfo/backend/pkg/email"
)

type Workers struct {
	NotificationSender NotificationSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type NotificationSender interface {
	SendPointOfInterestDeleted(ctx context.Context, id, cityID int64, name string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		NotificationSender: newNotificationSender(deps.EmailProvider, deps.Config.Email),
	}
}
