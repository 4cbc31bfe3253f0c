package validation_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"

	"tasklist/internal/adapter/http/dto"
	"tasklist/internal/adapter/http/validation"
	"tasklist/internal/core/domain"
)

func TestProjectName(t *testing.T) {
	name, err := validation.ProjectName(dto.CreateProjectRequest{Name: "  Secrets "})
	require.NoError(t, err)
	require.Equal(t, "Secrets", name)

	_, err = validation.ProjectName(dto.CreateProjectRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskDescription(t *testing.T) {
	description, err := validation.TaskDescription(dto.CreateTaskRequest{Description: "Eat more donuts. "})
	require.NoError(t, err)
	require.Equal(t, "Eat more donuts.", description)

	_, err = validation.TaskDescription(dto.CreateTaskRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaskID(t *testing.T) {
	id, err := validation.TaskID("12")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := validation.TaskID(raw)
		require.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}

func TestDeadline(t *testing.T) {
	date, err := validation.Deadline("25-01-2026")
	require.NoError(t, err)
	require.Equal(t, civil.Date{Year: 2026, Month: time.January, Day: 25}, date)

	_, err = validation.Deadline(" ")
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = validation.Deadline("25-1-2026")
	require.ErrorIs(t, err, domain.ErrInvalidDate)
}
