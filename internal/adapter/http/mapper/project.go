package mapper

import (
	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	return dto.ProjectItem{
		Name:  project.Name,
		Tasks: ToTaskItems(project.Tasks),
	}
}

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Description: task.Description,
		Done:        task.Done,
	}

	if task.Deadline != nil {
		value := domain.FormatDeadline(*task.Deadline)
		item.Deadline = &value
	}

	return item
}

// ToDeadlineGroupItems appends the "no deadline" group last, and only when
// it has tasks.
func ToDeadlineGroupItems(groups domain.DeadlineGroups) []dto.DeadlineGroupItem {
	items := make([]dto.DeadlineGroupItem, 0, len(groups.ByDeadline)+1)
	for _, group := range groups.ByDeadline {
		deadline := domain.FormatDeadline(group.Deadline)
		items = append(items, dto.DeadlineGroupItem{
			Deadline: &deadline,
			Projects: ToProjectItems(group.Projects),
		})
	}

	if len(groups.NoDeadline) > 0 {
		items = append(items, dto.DeadlineGroupItem{
			Projects: ToProjectItems(groups.NoDeadline),
		})
	}

	return items
}
