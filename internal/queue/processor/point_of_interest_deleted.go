package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cityinfo/backend/internal/queue/task"
	"github.com/cityinfo/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type pointOfInterestDeletedProcessor struct {
	workers *worker.Workers
}

func NewPointOfInterestDeletedProcessor(workers *worker.Workers) *pointOfInterestDeletedProcessor {
	return &pointOfInterestDeletedProcessor{
		workers: workers,
	}
}

func (p *pointOfInterestDeletedProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.PointOfInterestDeleted
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process point of interest deleted task json unmarshal failed: %w", err)
	}

	if err = p.workers.NotificationSender.SendPointOfInterestDeleted(ctx, data.ID, data.CityID, data.Name); err != nil {
		return fmt.Errorf("send point of interest deleted notification failed: %w", err)
	}

	return nil
}
