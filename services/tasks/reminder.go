// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"entrega/models"
)

const TypeDeliveryReminder = "delivery:reminder"

// NewDeliveryReminderTask builds an asynq task that fires at the start of the
// chosen delivery window.
func NewDeliveryReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeliveryReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}
