package models

// Task представляет задачу внутри проекта. Владение задачей определяется
// транзитивно через владельца родительского проекта.
type Task struct {
	ID          int
	Title       string
	Description string
	Completed   bool
	ProjectID   int
}

// DummyTask используется для приёма данных запроса на создание задачи.
type DummyTask struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	ProjectID   int     `json:"project_id" validate:"required"`
}

// UpdateTask — структура частичного обновления задачи.
// nil в поле означает, что поле в запросе отсутствовало и сохраняет прежнее значение.
type UpdateTask struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskView — каноничное JSON-представление задачи.
type TaskView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Project     Ref    `json:"project"`
}

// Serialize возвращает каноничное JSON-представление задачи.
func (t *Task) Serialize() TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Project:     Ref{ID: t.ProjectID, URL: ProjectURL(t.ProjectID)},
	}
}

// SerializeTasks сериализует список задач.
func SerializeTasks(tasks []*Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, t.Serialize())
	}
	return views
}
