package store

import (
	"context"
	"fmt"

	"github.com/abhisek/replayz/ent"
	"github.com/abhisek/replayz/ent/codingtask"
	entschema "github.com/abhisek/replayz/ent/schema"
	"github.com/abhisek/replayz/internal/lessons"
)

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) LoadLessonStructure(ctx context.Context, lessonID string) (*lessons.Structure, error) {
	tasks, err := r.client.CodingTask.Query().
		Where(codingtask.LessonID(lessonID)).
		Order(ent.Asc(codingtask.FieldTaskOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson %s: %w", lessonID, err)
	}

	st := &lessons.Structure{
		LessonID:        lessonID,
		MethodTemplates: make(map[string]string),
	}
	for _, t := range tasks {
		examples := make([]lessons.Example, 0, len(t.Examples))
		for _, ex := range t.Examples {
			examples = append(examples, lessons.Example{
				Input:  ex.Input,
				Output: ex.Output,
			})
		}
		st.Tasks = append(st.Tasks, lessons.Task{
			Title:       t.Title,
			Difficulty:  t.Difficulty,
			Description: t.Description,
			MethodName:  t.MethodName,
			Examples:    examples,
		})
		if t.MethodName != "" && t.StarterCode != "" {
			st.MethodTemplates[t.MethodName] = t.StarterCode
		}
	}
	return st, nil
}

func (r *lessonRepo) ImportLesson(ctx context.Context, st *lessons.Structure) error {
	if st.LessonID == "" {
		return fmt.Errorf("lesson id required")
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin lesson import: %w", err)
	}

	if err := importLessonTx(ctx, tx, st); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lesson import: %w", err)
	}
	return nil
}

func importLessonTx(ctx context.Context, tx *ent.Tx, st *lessons.Structure) error {
	// Re-importing a lesson replaces its previous definition.
	_, err := tx.CodingTask.Delete().
		Where(codingtask.LessonID(st.LessonID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear lesson %s: %w", st.LessonID, err)
	}

	for i, t := range st.Tasks {
		examples := make([]entschema.TaskExample, 0, len(t.Examples))
		for _, ex := range t.Examples {
			examples = append(examples, entschema.TaskExample{
				Input:  ex.Input,
				Output: ex.Output,
			})
		}
		_, err := tx.CodingTask.Create().
			SetLessonID(st.LessonID).
			SetTaskOrder(i).
			SetTitle(t.Title).
			SetDifficulty(t.Difficulty).
			SetDescription(t.Description).
			SetMethodName(t.MethodName).
			SetStarterCode(st.MethodTemplates[t.MethodName]).
			SetExamples(examples).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save task %d: %w", i, err)
		}
	}
	return nil
}
