package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cityinfo/backend/internal/config"
	"github.com/cityinfo/backend/pkg/email"
	mock_email "github.com/cityinfo/backend/pkg/email/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "point_of_interest_deleted.html")
	body := `<p>{{.Name}} (id {{.ID}}) was removed from city {{.CityID}}.</p>`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSendPointOfInterestDeleted(t *testing.T) {
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.MatchedBy(func(inp email.SendEmailInput) bool {
		return inp.To == "admin@example.com" &&
			inp.Subject == "Point of interest deleted" &&
			inp.Body == `<p>Eiffel Tower (id 5) was removed from city 3.</p>`
	})).Return(nil)

	s := newNotificationSender(sender, config.EmailConfig{
		Enabled: true,
		AdminTo: "admin@example.com",
		Templates: config.EmailTemplates{
			PointOfInterestDeleted: writeTemplate(t),
		},
	})

	err := s.SendPointOfInterestDeleted(context.Background(), 5, 3, "Eiffel Tower")
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestSendPointOfInterestDeletedDisabled(t *testing.T) {
	sender := new(mock_email.EmailSender)

	s := newNotificationSender(sender, config.EmailConfig{Enabled: false})

	err := s.SendPointOfInterestDeleted(context.Background(), 5, 3, "Eiffel Tower")
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestSendPointOfInterestDeletedMissingTemplate(t *testing.T) {
	sender := new(mock_email.EmailSender)

	s := newNotificationSender(sender, config.EmailConfig{
		Enabled: true,
		AdminTo: "admin@example.com",
		Templates: config.EmailTemplates{
			PointOfInterestDeleted: filepath.Join(t.TempDir(), "missing.html"),
		},
	})

	err := s.SendPointOfInterestDeleted(context.Background(), 5, 3, "Eiffel Tower")
	assert.Error(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}
