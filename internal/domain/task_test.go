package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeTask() *Task {
	return &Task{
		ID:               2,
		ProjectID:        3,
		Name:             "Furniture Installation",
		VendorID:         1,
		Category:         "Carpentry",
		WeekID:           1,
		CompletedPercent: 30,
		Status:           TaskActive,
	}
}

func TestComplete_FromActive(t *testing.T) {
	task := activeTask()
	require.NoError(t, task.Complete("http://b", "http://a", "done"))

	assert.Equal(t, TaskCompleted, task.Status)
	assert.Equal(t, 100, task.CompletedPercent)
	assert.Equal(t, "http://b", StringValue(task.ImagesBefore))
	assert.Equal(t, "http://a", StringValue(task.ImagesAfter))
	assert.Equal(t, "done", StringValue(task.Notes))
	assert.NoError(t, task.Validate())
}

func TestComplete_LeavesOtherFieldsAlone(t *testing.T) {
	task := activeTask()
	require.NoError(t, task.Complete("http://b", "http://a", "done"))

	assert.Equal(t, 2, task.ID)
	assert.Equal(t, 3, task.ProjectID)
	assert.Equal(t, "Furniture Installation", task.Name)
	assert.Equal(t, 1, task.VendorID)
	assert.Equal(t, "Carpentry", task.Category)
	assert.Equal(t, 1, task.WeekID)
}

func TestComplete_AlreadyCompleted(t *testing.T) {
	task := activeTask()
	require.NoError(t, task.Complete("http://b", "http://a", "done"))
	before := *task

	err := task.Complete("http://x", "http://y", "again")
	require.Error(t, err)
	code, ok := ValidationCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, CodeAlreadyCompleted, code)
	assert.Equal(t, "http://b", StringValue(task.ImagesBefore), "evidence should not be overwritten")
	assert.Equal(t, before.Status, task.Status)
}

func TestComplete_MissingFields(t *testing.T) {
	cases := []struct {
		name          string
		before, after string
		notes         string
		field         string
	}{
		{"no before", "", "http://a", "done", "before"},
		{"no after", "http://b", "", "done", "after"},
		{"no notes", "http://b", "http://a", "", "notes"},
		{"blank notes", "http://b", "http://a", "   ", "notes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := activeTask()
			err := task.Complete(tc.before, tc.after, tc.notes)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, CodeMissingField, ve.Code)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, TaskActive, task.Status, "status should not change")
			assert.Equal(t, 30, task.CompletedPercent)
			assert.Nil(t, task.ImagesBefore)
		})
	}
}

func TestTaskValidate_CompletedInvariant(t *testing.T) {
	task := activeTask()
	task.Status = TaskCompleted
	task.CompletedPercent = 100
	err := task.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing evidence")

	task.CompletedPercent = 90
	task.ImagesBefore = OptionalString("http://b")
	task.ImagesAfter = OptionalString("http://a")
	task.Notes = OptionalString("n")
	err = task.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "100%")
}

func TestTaskValidate_Ranges(t *testing.T) {
	task := activeTask()
	task.WeekID = 0
	assert.Error(t, task.Validate())

	task = activeTask()
	task.CompletedPercent = 101
	assert.Error(t, task.Validate())

	task = activeTask()
	task.Status = "archived"
	assert.Error(t, task.Validate())
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("  \t"))
	require.NotNil(t, OptionalString(" x "))
	assert.Equal(t, "x", *OptionalString(" x "))
	assert.Equal(t, "", StringValue(nil))
}
