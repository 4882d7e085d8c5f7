// Package stats computes derived statistics over a user's full list and
// task snapshot. Everything here is pure: the same snapshot and the same
// reference time always produce the same result, and nothing is cached
// between calls.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/tasklight/core/internal/domain/entities"
)

// Overview summarizes completion across all tasks.
type Overview struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Open           int `json:"open"`
	CompletionRate int `json:"completion_rate"`
}

// PriorityCount splits one priority level into open and completed tasks.
type PriorityCount struct {
	Total     int `json:"total"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
}

// PriorityBreakdown counts tasks per priority level. Tasks with a missing
// or unrecognized priority are counted as Medium.
type PriorityBreakdown struct {
	High   PriorityCount `json:"high"`
	Medium PriorityCount `json:"medium"`
	Low    PriorityCount `json:"low"`
}

// Deadlines analyses due and planned dates relative to the reference time.
// Completed tasks never count as overdue, due, or planned.
type Deadlines struct {
	WithDeadline int `json:"with_deadline"`
	Overdue      int `json:"overdue"`
	DueToday     int `json:"due_today"`
	DueThisWeek  int `json:"due_this_week"`
	WithPlanned  int `json:"with_planned"`
	PlannedToday int `json:"planned_today"`
}

// ListStats aggregates the tasks of a single list. The synthetic bucket
// for tasks without a list has a nil ID.
type ListStats struct {
	ID        *int64 `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Open      int    `json:"open"`
	Overdue   int    `json:"overdue"`
}

// Statistics is the full aggregation result.
type Statistics struct {
	Overview          Overview          `json:"overview"`
	Priorities        PriorityBreakdown `json:"priorities"`
	Deadlines         Deadlines         `json:"deadlines"`
	AvgCompletionDays *int              `json:"avg_completion_days"`
	Lists             []ListStats       `json:"lists"`
	Completed         []entities.Task   `json:"completed"`
}

// NoListName labels the bucket holding tasks without a list.
const NoListName = "No list"

// Compute derives the full statistics for one user's snapshot. The caller
// supplies the reference time so results are reproducible in tests.
func Compute(lists []entities.List, tasks []entities.Task, now time.Time) Statistics {
	return Statistics{
		Overview:          ComputeOverview(tasks),
		Priorities:        ComputePriorities(tasks),
		Deadlines:         ComputeDeadlines(tasks, now),
		AvgCompletionDays: AverageCompletionDays(tasks),
		Lists:             ComputeListStats(lists, tasks, now),
		Completed:         CompletedTasks(tasks),
	}
}

// ComputeOverview counts totals and the rounded completion rate. An empty
// snapshot yields a rate of 0, not a division error.
func ComputeOverview(tasks []entities.Task) Overview {
	o := Overview{Total: len(tasks)}
	for i := range tasks {
		if tasks[i].Completed {
			o.Completed++
		}
	}
	o.Open = o.Total - o.Completed
	if o.Total > 0 {
		o.CompletionRate = int(math.Round(100 * float64(o.Completed) / float64(o.Total)))
	}
	return o
}

// ComputePriorities buckets tasks by effective priority.
func ComputePriorities(tasks []entities.Task) PriorityBreakdown {
	var b PriorityBreakdown
	for i := range tasks {
		t := &tasks[i]
		var c *PriorityCount
		switch t.EffectivePriority() {
		case entities.PriorityHigh:
			c = &b.High
		case entities.PriorityLow:
			c = &b.Low
		default:
			c = &b.Medium
		}
		c.Total++
		if t.Completed {
			c.Completed++
		} else {
			c.Open++
		}
	}
	return b
}

// ComputeDeadlines evaluates due/planned windows against now. "Due this
// week" means strictly after now and within the next seven days.
func ComputeDeadlines(tasks []entities.Task, now time.Time) Deadlines {
	weekEnd := now.AddDate(0, 0, 7)
	var d Deadlines
	for i := range tasks {
		t := &tasks[i]
		if t.DueDate != nil {
			d.WithDeadline++
		}
		if t.IsOverdue(now) {
			d.Overdue++
		}
		if t.IsDueOn(now) {
			d.DueToday++
		}
		if t.DueDate != nil && !t.Completed && t.DueDate.After(now) && !t.DueDate.After(weekEnd) {
			d.DueThisWeek++
		}
		if t.PlannedDate != nil {
			d.WithPlanned++
		}
		if t.IsPlannedOn(now) {
			d.PlannedToday++
		}
	}
	return d
}

// AverageCompletionDays returns the mean time from creation to completion
// in whole days, rounded, over tasks carrying both timestamps. It returns
// nil when no such tasks exist; zero would wrongly suggest same-day
// completion is typical.
func AverageCompletionDays(tasks []entities.Task) *int {
	var sum float64
	var n int
	for i := range tasks {
		t := &tasks[i]
		if !t.Completed || t.CompletedAt == nil || t.CreatedAt.IsZero() {
			continue
		}
		sum += t.CompletedAt.Sub(t.CreatedAt).Hours() / 24
		n++
	}
	if n == 0 {
		return nil
	}
	avg := int(math.Round(sum / float64(n)))
	return &avg
}

// ComputeListStats produces one row per list plus the synthetic "no list"
// bucket for tasks whose list reference is null. The bucket is always
// present, even when empty, so deleting a list visibly moves its tasks.
func ComputeListStats(lists []entities.List, tasks []entities.Task, now time.Time) []ListStats {
	out := make([]ListStats, 0, len(lists)+1)
	for _, l := range lists {
		id := l.ID
		out = append(out, ListStats{ID: &id, Name: l.Name, Color: l.Color})
	}
	out = append(out, ListStats{Name: NoListName, Color: entities.NoListColor})

	index := make(map[int64]*ListStats, len(lists))
	for i := range out[:len(lists)] {
		index[*out[i].ID] = &out[i]
	}
	noList := &out[len(out)-1]

	for i := range tasks {
		t := &tasks[i]
		row := noList
		if t.ListID != nil {
			if r, ok := index[*t.ListID]; ok {
				row = r
			}
		}
		row.Total++
		if t.Completed {
			row.Completed++
		} else {
			row.Open++
		}
		if t.IsOverdue(now) {
			row.Overdue++
		}
	}
	return out
}

// CompletedTasks returns all completed tasks, most recently completed
// first. Tasks with a null completed_at sort last.
func CompletedTasks(tasks []entities.Task) []entities.Task {
	done := make([]entities.Task, 0)
	for i := range tasks {
		if tasks[i].Completed {
			done = append(done, tasks[i])
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		a, b := done[i].CompletedAt, done[j].CompletedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return done
}
