package ports

import (
	"cloud.google.com/go/civil"

	"tasklist/internal/core/domain"
)

// TaskRepository holds projects and their tasks. It assigns no IDs and does
// not check name uniqueness.
type TaskRepository interface {
	AddProject(name string)
	AddTask(projectName string, task domain.Task) error
	FindProjectTasks(projectName string) ([]domain.Task, bool)
	FindTaskByID(id int64) (*domain.Task, bool)
	FindProjectTask(projectName string, id int64) (*domain.Task, bool)
	AllProjects() []domain.Project
	Stats() domain.StoreStats
}

// TaskService reports unknown projects and tasks through its return values only.
type TaskService interface {
	AddProject(name string)
	CreateTask(projectName, description string) (domain.Task, bool)
	AddTask(projectName, description string) bool
	SetDone(taskID int64, done bool) bool
	SetProjectTaskDone(projectName string, taskID int64, done bool) bool
	SetDeadline(taskID int64, deadline civil.Date) bool
	SetProjectTaskDeadline(projectName string, taskID int64, deadline civil.Date) bool
	AllProjects() []domain.Project
	ViewByDeadlineGroups() domain.DeadlineGroups
	TasksDueOn(day civil.Date) []domain.Project
	TasksDueToday() []domain.Project
	Stats() domain.StoreStats
}

type Clock interface {
	Today() civil.Date
}
