package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	PointOfInterestDeletedTaskName  = "pointOfInterestDeletedTask"
	PointOfInterestDeletedQueueName = "notificationQueue"
)

type PointOfInterestDeleted struct {
	ID     int64  `json:"id"`
	CityID int64  `json:"city_id"`
	Name   string `json:"name"`
}

func NewPointOfInterestDeletedTask(id, cityID int64, name string) (*asynq.Task, error) {
	data := PointOfInterestDeleted{
		ID:     id,
		CityID: cityID,
		Name:   name,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		PointOfInterestDeletedTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(PointOfInterestDeletedQueueName),
	), nil
}
