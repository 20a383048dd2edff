package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type Task struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	EventID   uuid.UUID       `json:"event_id" db:"event_id"`
	Title     string          `json:"title" db:"title"`
	Category  *BudgetCategory `json:"category,omitempty" db:"category"` //к какой части бюджета относится, опционально
	Status    TaskStatus      `json:"status" db:"status"`
	DueDate   *time.Time      `json:"due_date,omitempty" db:"due_date"`
	Assignee  string          `json:"assignee" db:"assignee"`
	SortOrder int             `json:"sort_order" db:"sort_order"`
	Notes     string          `json:"notes" db:"notes"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type TaskCreate struct {
	Title    string     `json:"title" binding:"required"`
	Category *string    `json:"category"`
	DueDate  *time.Time `json:"due_date"`
	Assignee string     `json:"assignee"`
	Notes    string     `json:"notes"`
}

type TaskUpdate struct {
	Title     *string     `json:"title"`
	Category  *string     `json:"category"`
	Status    *TaskStatus `json:"status"`
	DueDate   *time.Time  `json:"due_date"`
	Assignee  *string     `json:"assignee"`
	SortOrder *int        `json:"sort_order"`
	Notes     *string     `json:"notes"`
}

type TaskSummary struct {
	Total          int `json:"total"`
	Todo           int `json:"todo"`
	InProgress     int `json:"in_progress"`
	Done           int `json:"done"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completion_rate"` //0-100
}

// дефолтный чеклист нового события, сидится при создании
var DefaultChecklist = []struct {
	Title      string
	Category   BudgetCategory
	DaysBefore int //за сколько дней до события дедлайн
}{
	{Title: "Забронировать площадку", Category: CategoryVenue, DaysBefore: 180},
	{Title: "Выбрать кейтеринг и согласовать меню", Category: CategoryCatering, DaysBefore: 120},
	{Title: "Договориться с фотографом", Category: CategoryPhotography, DaysBefore: 120},
	{Title: "Договориться с видеографом", Category: CategoryVideography, DaysBefore: 120},
	{Title: "Заказать приглашения", Category: CategoryInvitations, DaysBefore: 90},
	{Title: "Разослать приглашения", Category: CategoryInvitations, DaysBefore: 60},
	{Title: "Забронировать номера для иногородних", Category: CategoryAccommodation, DaysBefore: 45},
	{Title: "Организовать трансфер гостей", Category: CategoryTransportation, DaysBefore: 30},
	{Title: "Согласовать оформление и цветы", Category: CategoryFlowers, DaysBefore: 30},
	{Title: "Собрать ответы по RSVP", Category: CategoryInvitations, DaysBefore: 21},
	{Title: "Передать финальное число гостей кейтерингу", Category: CategoryCatering, DaysBefore: 7},
	{Title: "Подтвердить тайминг дня со всеми подрядчиками", Category: CategoryStaff, DaysBefore: 3},
}
