package service

import (
	"testing"

	"focustrack/internal/model"
)

func TestBuildDashboardPercentages(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Status: model.StatusDone, Priority: model.PriorityHigh},
		{ID: 2, Status: model.StatusDone, Priority: model.PriorityLow},
		{ID: 3, Status: model.StatusInProgress, Priority: model.PriorityHigh},
		{ID: 4, Status: model.StatusPending, Priority: model.PriorityMedium},
	}

	d := BuildDashboard(tasks)
	if d.TotalTasks != 4 || d.CompletedTasks != 2 || d.InProgressTasks != 1 || d.PendingTasks != 1 {
		t.Fatalf("unexpected counts: %+v", d)
	}
	if d.PercentComplete != 50 || d.PercentInProgress != 25 || d.PercentPending != 25 {
		t.Fatalf("unexpected percentages: %d/%d/%d", d.PercentComplete, d.PercentInProgress, d.PercentPending)
	}
	if d.CountsByPriority["high"] != 2 || d.CountsByPriority["medium"] != 1 || d.CountsByPriority["low"] != 1 {
		t.Fatalf("unexpected priority counts: %v", d.CountsByPriority)
	}
}

func TestBuildDashboardPercentagesSumTo100(t *testing.T) {
	tasks := []model.Task{
		{Status: model.StatusDone},
		{Status: model.StatusInProgress},
		{Status: model.StatusPending},
	}
	d := BuildDashboard(tasks)
	if d.PercentComplete != 33 || d.PercentInProgress != 33 || d.PercentPending != 34 {
		t.Fatalf("unexpected percentages: %d/%d/%d", d.PercentComplete, d.PercentInProgress, d.PercentPending)
	}
}

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(nil)
	if d.TotalTasks != 0 || d.PercentComplete != 0 || d.PercentInProgress != 0 || d.PercentPending != 0 {
		t.Fatalf("empty dashboard should be all zero: %+v", d)
	}
	if len(d.Upcoming) != 0 || len(d.RecentTasks) != 0 {
		t.Fatalf("empty dashboard should have no lists: %+v", d)
	}
}

func TestBuildDashboardUpcomingAndRecent(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, DueDate: "", CreatedAt: "2026-10-01 08:00"},
		{ID: 2, DueDate: "2026-10-20", CreatedAt: "2026-10-05 08:00"},
		{ID: 3, DueDate: "2026-10-18", CreatedAt: "2026-10-03 08:00"},
		{ID: 4, DueDate: "2026-12-01", CreatedAt: "2026-10-07 08:00"},
		{ID: 5, DueDate: "2026-10-19", CreatedAt: "2026-10-02 08:00"},
		{ID: 6, DueDate: "2026-11-01", CreatedAt: "2026-10-06 08:00"},
		{ID: 7, DueDate: "2027-01-01", CreatedAt: "2026-10-04 08:00"},
	}

	d := BuildDashboard(tasks)
	assertIDs(t, "upcoming", d.Upcoming, []uint{3, 5, 2, 6, 4})
	assertIDs(t, "recent", d.RecentTasks, []uint{4, 6, 2, 7, 3})

	// the input order must be left alone
	if tasks[0].ID != 1 || tasks[6].ID != 7 {
		t.Fatal("BuildDashboard must not reorder its input")
	}
}

func TestBuildDashboardUndatedSortsLast(t *testing.T) {
	d := BuildDashboard([]model.Task{
		{ID: 1, DueDate: ""},
		{ID: 2, DueDate: "2026-10-20"},
	})
	assertIDs(t, "upcoming", d.Upcoming, []uint{2, 1})
}

func assertIDs(t *testing.T, name string, tasks []model.Task, want []uint) {
	t.Helper()
	if len(tasks) != len(want) {
		t.Fatalf("%s: got %d tasks, want %d", name, len(tasks), len(want))
	}
	for i, task := range tasks {
		if task.ID != want[i] {
			got := make([]uint, len(tasks))
			for j := range tasks {
				got[j] = tasks[j].ID
			}
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}
