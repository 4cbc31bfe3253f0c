package validation

import (
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/core/domain"
)

func ProjectName(req dto.CreateProjectRequest) (string, error) {
	return requiredText(req.Name)
}

func TaskDescription(req dto.CreateTaskRequest) (string, error) {
	return requiredText(req.Description)
}

func TaskID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// Deadline rejects blank values with ErrInvalidInput and malformed dates
// with ErrInvalidDate.
func Deadline(raw string) (civil.Date, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return civil.Date{}, domain.ErrInvalidInput
	}
	return domain.ParseDeadline(value)
}

func requiredText(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domain.ErrInvalidInput
	}
	return trimmed, nil
}
