package lessons

import (
	"context"
	"errors"
	"testing"
)

type fakeLoader struct {
	calls int
	err   error
}

func (f *fakeLoader) LoadLessonStructure(_ context.Context, lessonID string) (*Structure, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &Structure{
		LessonID: lessonID,
		Tasks: []Task{
			{Title: "Two Sum", MethodName: "twoSum"},
			{Title: "Reverse List", MethodName: "reverseList"},
		},
		MethodTemplates: map[string]string{
			"twoSum": "def two_sum(nums, target):\n    pass\n",
		},
	}, nil
}

func TestService_CachesPerLesson(t *testing.T) {
	loader := &fakeLoader{}
	svc := NewService(loader)
	ctx := context.Background()

	if _, err := svc.Structure(ctx, "lesson-1"); err != nil {
		t.Fatalf("structure: %v", err)
	}
	if _, err := svc.Structure(ctx, "lesson-1"); err != nil {
		t.Fatalf("structure: %v", err)
	}
	if loader.calls != 1 {
		t.Errorf("loader called %d times, want 1", loader.calls)
	}

	if _, err := svc.Structure(ctx, "lesson-2"); err != nil {
		t.Fatalf("structure: %v", err)
	}
	if loader.calls != 2 {
		t.Errorf("loader called %d times, want 2", loader.calls)
	}
}

func TestService_FailuresNotCached(t *testing.T) {
	loader := &fakeLoader{err: errors.New("down")}
	svc := NewService(loader)
	ctx := context.Background()

	if _, err := svc.Structure(ctx, "lesson-1"); err == nil {
		t.Fatal("expected error")
	}

	loader.err = nil
	if _, err := svc.Structure(ctx, "lesson-1"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestStructure_TaskAt(t *testing.T) {
	st := &Structure{
		Tasks: []Task{{Title: "A"}, {Title: "B"}},
	}

	if got := st.TaskAt(1); got == nil || got.Title != "B" {
		t.Errorf("TaskAt(1) = %+v, want B", got)
	}
	if st.TaskAt(-1) != nil {
		t.Error("TaskAt(-1) should be nil")
	}
	if st.TaskAt(2) != nil {
		t.Error("TaskAt(2) should be nil")
	}

	var nilStructure *Structure
	if nilStructure.TaskAt(0) != nil {
		t.Error("TaskAt on nil structure should be nil")
	}
}

func TestStructure_TemplateFor(t *testing.T) {
	st := &Structure{
		Tasks:           []Task{{Title: "A", MethodName: "solve"}},
		MethodTemplates: map[string]string{"solve": "func solve() {}"},
	}

	if got := st.TemplateFor(0); got != "func solve() {}" {
		t.Errorf("TemplateFor(0) = %q", got)
	}
	if got := st.TemplateFor(5); got != "" {
		t.Errorf("TemplateFor(5) = %q, want empty", got)
	}
}
