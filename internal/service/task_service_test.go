package service

import (
	"testing"
	"time"

	"github.com/alligatorO15/wed-planner/internal/models"
)

func TestSummarizeTasks(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 10)

	tasks := []models.Task{
		{Status: models.TaskDone, DueDate: &past},       //закрытая просрочкой не считается
		{Status: models.TaskTodo, DueDate: &past},       //просрочена
		{Status: models.TaskInProgress, DueDate: &past}, //просрочена
		{Status: models.TaskTodo, DueDate: &future},
		{Status: models.TaskTodo}, //без дедлайна
		{Status: models.TaskDone},
	}

	summary := SummarizeTasks(tasks, now)

	if summary.Total != 6 {
		t.Errorf("Total = %d, want 6", summary.Total)
	}
	if summary.Done != 2 || summary.InProgress != 1 || summary.Todo != 3 {
		t.Errorf("status counts wrong: %+v", summary)
	}
	if summary.Overdue != 2 {
		t.Errorf("Overdue = %d, want 2", summary.Overdue)
	}
	// 2 из 6 = 33%
	if summary.CompletionRate != 33 {
		t.Errorf("CompletionRate = %d, want 33", summary.CompletionRate)
	}
}

func TestSummarizeTasksEmpty(t *testing.T) {
	summary := SummarizeTasks(nil, time.Now())
	if summary.Total != 0 || summary.CompletionRate != 0 {
		t.Errorf("empty task list must produce zero summary, got %+v", summary)
	}
}
