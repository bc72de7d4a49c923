package notification

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// ReminderPayload is the task body carried by a delayed booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Recipient string `json:"recipient"`
}

// NewReminderTask builds a reminder task scheduled for fireAt.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
