package service

import (
	"sort"

	"focustrack/internal/model"
)

const (
	dashboardListSize = 5
	noDueDateSortKey  = "9999-12-31"
)

// Dashboard is the aggregate view over one user's tasks.
type Dashboard struct {
	TotalTasks        int            `json:"total_tasks"`
	CompletedTasks    int            `json:"completed_tasks"`
	InProgressTasks   int            `json:"in_progress_tasks"`
	PendingTasks      int            `json:"pending_tasks"`
	PercentComplete   int            `json:"percent_complete"`
	PercentInProgress int            `json:"percent_in_progress"`
	PercentPending    int            `json:"percent_pending"`
	CountsByPriority  map[string]int `json:"counts_by_priority"`
	Upcoming          []model.Task   `json:"upcoming"`
	RecentTasks       []model.Task   `json:"recent_tasks"`
}

// BuildDashboard counts statuses exactly and derives the pending percentage as the
// remainder, so the three percentages always add up to 100 for a non-empty list.
func BuildDashboard(tasks []model.Task) Dashboard {
	d := Dashboard{
		TotalTasks: len(tasks),
		CountsByPriority: map[string]int{
			"high":   0,
			"medium": 0,
			"low":    0,
		},
	}

	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			d.CompletedTasks++
		case model.StatusInProgress:
			d.InProgressTasks++
		case model.StatusPending:
			d.PendingTasks++
		}
		switch t.Priority {
		case model.PriorityHigh:
			d.CountsByPriority["high"]++
		case model.PriorityMedium:
			d.CountsByPriority["medium"]++
		case model.PriorityLow:
			d.CountsByPriority["low"]++
		}
	}

	if d.TotalTasks > 0 {
		d.PercentComplete = d.CompletedTasks * 100 / d.TotalTasks
		d.PercentInProgress = d.InProgressTasks * 100 / d.TotalTasks
		d.PercentPending = 100 - d.PercentComplete - d.PercentInProgress
	}

	upcoming := append([]model.Task(nil), tasks...)
	sort.SliceStable(upcoming, func(i, j int) bool {
		return dueSortKey(upcoming[i]) < dueSortKey(upcoming[j])
	})
	d.Upcoming = head(upcoming, dashboardListSize)

	recent := append([]model.Task(nil), tasks...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt > recent[j].CreatedAt
	})
	d.RecentTasks = head(recent, dashboardListSize)

	return d
}

func dueSortKey(t model.Task) string {
	if t.DueDate == "" {
		return noDueDateSortKey
	}
	return t.DueDate
}

func head(tasks []model.Task, n int) []model.Task {
	if len(tasks) > n {
		return tasks[:n]
	}
	return tasks
}
