package service

import (
	"cmp"
	"slices"
	"sync"

	"cloud.google.com/go/civil"

	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

// TaskService is the only writer of the repository. A single mutex guards the
// ID counter and the repository together.
type TaskService struct {
	mu             sync.Mutex
	taskRepository ports.TaskRepository
	clock          ports.Clock
	lastID         int64
}

func NewTaskService(taskRepository ports.TaskRepository, clock ports.Clock) *TaskService {
	return &TaskService{taskRepository: taskRepository, clock: clock}
}

func (s *TaskService) AddProject(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskRepository.AddProject(name)
}

// CreateTask returns false when the project does not exist. No ID is consumed
// in that case.
func (s *TaskService) CreateTask(projectName, description string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.taskRepository.FindProjectTasks(projectName); !ok {
		return domain.Task{}, false
	}

	task := domain.NewTask(s.lastID+1, description)
	if err := s.taskRepository.AddTask(projectName, task); err != nil {
		return domain.Task{}, false
	}
	s.lastID = task.ID
	return task, true
}

func (s *TaskService) AddTask(projectName, description string) bool {
	_, ok := s.CreateTask(projectName, description)
	return ok
}

func (s *TaskService) SetDone(taskID int64, done bool) bool {
	return s.updateTask(taskID, func(task *domain.Task) {
		task.Done = done
	})
}

// SetProjectTaskDone is SetDone restricted to tasks of the named project.
func (s *TaskService) SetProjectTaskDone(projectName string, taskID int64, done bool) bool {
	return s.updateProjectTask(projectName, taskID, func(task *domain.Task) {
		task.Done = done
	})
}

func (s *TaskService) SetDeadline(taskID int64, deadline civil.Date) bool {
	return s.updateTask(taskID, func(task *domain.Task) {
		task.Deadline = &deadline
	})
}

// SetProjectTaskDeadline fails when the task exists but belongs to another project.
func (s *TaskService) SetProjectTaskDeadline(projectName string, taskID int64, deadline civil.Date) bool {
	return s.updateProjectTask(projectName, taskID, func(task *domain.Task) {
		task.Deadline = &deadline
	})
}

func (s *TaskService) AllProjects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskRepository.AllProjects()
}

// ViewByDeadlineGroups orders groups by date, projects by name and tasks by ID.
func (s *TaskService) ViewByDeadlineGroups() domain.DeadlineGroups {
	s.mu.Lock()
	projects := s.taskRepository.AllProjects()
	s.mu.Unlock()

	byDeadline := map[civil.Date]map[string][]domain.Task{}
	noDeadline := map[string][]domain.Task{}

	for _, project := range projects {
		for _, task := range project.Tasks {
			if !task.HasDeadline() {
				noDeadline[project.Name] = append(noDeadline[project.Name], task)
				continue
			}
			byProject, ok := byDeadline[*task.Deadline]
			if !ok {
				byProject = map[string][]domain.Task{}
				byDeadline[*task.Deadline] = byProject
			}
			byProject[project.Name] = append(byProject[project.Name], task)
		}
	}

	groups := domain.DeadlineGroups{
		ByDeadline: make([]domain.DeadlineGroup, 0, len(byDeadline)),
		NoDeadline: sortedProjects(noDeadline),
	}
	for deadline, byProject := range byDeadline {
		groups.ByDeadline = append(groups.ByDeadline, domain.DeadlineGroup{
			Deadline: deadline,
			Projects: sortedProjects(byProject),
		})
	}
	slices.SortFunc(groups.ByDeadline, func(a, b domain.DeadlineGroup) int {
		return compareDates(a.Deadline, b.Deadline)
	})

	return groups
}

func (s *TaskService) TasksDueToday() []domain.Project {
	return s.TasksDueOn(s.clock.Today())
}

// TasksDueOn keeps project insertion order and skips projects with nothing due.
func (s *TaskService) TasksDueOn(day civil.Date) []domain.Project {
	s.mu.Lock()
	projects := s.taskRepository.AllProjects()
	s.mu.Unlock()

	due := make([]domain.Project, 0)
	for _, project := range projects {
		var tasks []domain.Task
		for _, task := range project.Tasks {
			if task.DueOn(day) {
				tasks = append(tasks, task)
			}
		}
		if len(tasks) > 0 {
			due = append(due, domain.Project{Name: project.Name, Tasks: tasks})
		}
	}
	return due
}

func (s *TaskService) Stats() domain.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskRepository.Stats()
}

func (s *TaskService) updateTask(taskID int64, update func(*domain.Task)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskRepository.FindTaskByID(taskID)
	if !ok {
		return false
	}
	update(task)
	return true
}

func (s *TaskService) updateProjectTask(projectName string, taskID int64, update func(*domain.Task)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.taskRepository.FindProjectTask(projectName, taskID)
	if !ok {
		return false
	}
	update(task)
	return true
}

func sortedProjects(byProject map[string][]domain.Task) []domain.Project {
	projects := make([]domain.Project, 0, len(byProject))
	for name, tasks := range byProject {
		slices.SortFunc(tasks, func(a, b domain.Task) int {
			return cmp.Compare(a.ID, b.ID)
		})
		projects = append(projects, domain.Project{Name: name, Tasks: tasks})
	}
	slices.SortFunc(projects, func(a, b domain.Project) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return projects
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

var _ ports.TaskService = (*TaskService)(nil)
