package dto

type TaskItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Done        bool    `json:"done"`
	Deadline    *string `json:"deadline"`
}

type ProjectItem struct {
	Name  string     `json:"name"`
	Tasks []TaskItem `json:"tasks"`
}

// DeadlineGroupItem has a nil Deadline for the "no deadline" group.
type DeadlineGroupItem struct {
	Deadline *string       `json:"deadline"`
	Projects []ProjectItem `json:"projects"`
}

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
}
