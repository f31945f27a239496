package model

// Reminder is a timestamp attached to a task. Reminders are stored, never sent.
type Reminder struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TaskID   uint   `gorm:"index;not null" json:"task_id"`
	RemindAt string `gorm:"not null" json:"remind_at"`
}
