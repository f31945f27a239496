package model

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Priorities lists accepted priorities in display order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh}

// Statuses lists accepted statuses in display order.
var Statuses = []string{StatusPending, StatusInProgress, StatusDone}

// Task represents a single item owned by a user.
type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	DueDate     string `gorm:"index" json:"due_date"` // free-form, usually YYYY-MM-DD
	Priority    string `json:"priority"`
	Status      string `gorm:"index" json:"status"`
	CreatedAt   string `json:"created_at"` // YYYY-MM-DD HH:MM, local time
	CategoryID  *uint  `gorm:"index" json:"category_id,omitempty"`
	UserID      uint   `gorm:"index;not null" json:"-"`

	Category  *Category  `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Reminders []Reminder `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// IsValidPriority reports whether p is one of Priorities.
func IsValidPriority(p string) bool {
	return contains(Priorities, p)
}

// IsValidStatus reports whether s is one of Statuses.
func IsValidStatus(s string) bool {
	return contains(Statuses, s)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
