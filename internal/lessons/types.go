package lessons

// Example is one input/output example shown with a task.
type Example struct {
	Input  string
	Output string
}

// Task is the static definition of one coding task within a lesson.
type Task struct {
	Title       string
	Difficulty  string
	Description string
	MethodName  string
	Examples    []Example
}

// Structure is the full static definition of a lesson: its ordered tasks and
// the starter-code template per method. It is not time-dependent.
type Structure struct {
	LessonID        string
	Tasks           []Task
	MethodTemplates map[string]string
}

// TaskAt returns the task at the given replay task index, or nil when the
// index is outside the lesson.
func (s *Structure) TaskAt(index int) *Task {
	if s == nil || index < 0 || index >= len(s.Tasks) {
		return nil
	}
	return &s.Tasks[index]
}

// TemplateFor returns the starter code for the task at index, or "" when the
// task or its template is unknown. Replay falls back to this before the
// first code snapshot.
func (s *Structure) TemplateFor(index int) string {
	t := s.TaskAt(index)
	if t == nil {
		return ""
	}
	return s.MethodTemplates[t.MethodName]
}
