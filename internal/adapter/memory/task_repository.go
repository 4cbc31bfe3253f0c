package memory

import (
	"sync"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

type project struct {
	name  string
	tasks []*domain.Task
}

// TaskRepository keeps projects in insertion order and tasks in creation order.
type TaskRepository struct {
	mu       sync.RWMutex
	projects []*project
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func (r *TaskRepository) AddProject(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, &project{name: name})
}

func (r *TaskRepository) AddTask(projectName string, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(projectName)
	if p == nil {
		return domain.ErrUnknownProject
	}
	p.tasks = append(p.tasks, &task)
	return nil
}

func (r *TaskRepository) FindProjectTasks(projectName string) ([]domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.find(projectName)
	if p == nil {
		return nil, false
	}
	return copyTasks(p.tasks), true
}

// FindTaskByID returns the live task so callers can mutate it in place.
func (r *TaskRepository) FindTaskByID(id int64) (*domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if task := findTask(p, id); task != nil {
			return task, true
		}
	}
	return nil, false
}

func (r *TaskRepository) FindProjectTask(projectName string, id int64) (*domain.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p := r.find(projectName)
	if p == nil {
		return nil, false
	}
	task := findTask(p, id)
	return task, task != nil
}

func (r *TaskRepository) AllProjects() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		projects = append(projects, domain.Project{Name: p.name, Tasks: copyTasks(p.tasks)})
	}
	return projects
}

func (r *TaskRepository) Stats() domain.StoreStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := domain.StoreStats{Projects: len(r.projects)}
	for _, p := range r.projects {
		stats.Tasks += len(p.tasks)
	}
	return stats
}

// find resolves duplicate names to the earliest project.
func (r *TaskRepository) find(name string) *project {
	for _, p := range r.projects {
		if p.name == name {
			return p
		}
	}
	return nil
}

func findTask(p *project, id int64) *domain.Task {
	for _, task := range p.tasks {
		if task.ID == id {
			return task
		}
	}
	return nil
}

func copyTasks(tasks []*domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		value := *task
		if task.Deadline != nil {
			deadline := *task.Deadline
			value.Deadline = &deadline
		}
		out = append(out, value)
	}
	return out
}
