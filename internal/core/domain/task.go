package domain

import "cloud.google.com/go/civil"

type Task struct {
	ID          int64
	Description string
	Done        bool
	Deadline    *civil.Date
}

func NewTask(id int64, description string) Task {
	return Task{ID: id, Description: description}
}

func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// DueOn reports whether the task has a deadline on exactly the given day.
func (t Task) DueOn(day civil.Date) bool {
	return t.Deadline != nil && *t.Deadline == day
}

// Project is one entry of the ordered project name to tasks mapping.
type Project struct {
	Name  string
	Tasks []Task
}

type DeadlineGroup struct {
	Deadline civil.Date
	Projects []Project
}

// DeadlineGroups is the deadline-grouped view: dated groups first, earliest
// date first, then the projects holding tasks without a deadline.
type DeadlineGroups struct {
	ByDeadline []DeadlineGroup
	NoDeadline []Project
}

func (g DeadlineGroups) IsEmpty() bool {
	return len(g.ByDeadline) == 0 && len(g.NoDeadline) == 0
}
