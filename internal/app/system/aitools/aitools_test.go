package aitools

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/memstore"
	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

func newBoard(t *testing.T) *Board {
	t.Helper()
	repo := memstore.New(func(s models.SchoolData) int { return s.ID }, []models.SchoolData{seed.SampleSchool()}).
		WithClone(models.SchoolData.Clone)
	clock := time.Date(2024, 5, 1, 14, 3, 9, 0, time.UTC)
	return NewBoard(repo, 1).WithClock(func() time.Time { return clock })
}

func TestAdd_ThenRemoveRestores(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	before, _ := b.School(ctx)

	after, err := b.Add(ctx, "Lesson Planner", models.TargetStudents)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if after.AiTools.Allocated != before.AiTools.Allocated+1 || len(after.AiTools.ForStudents) != 3 {
		t.Fatalf("after add: %+v", after.AiTools)
	}
	if !after.AiTools.ForStudents[2].Enabled {
		t.Error("added tool is not enabled")
	}

	restored, ok, err := b.Remove(ctx, "Lesson Planner", models.TargetStudents)
	if err != nil || !ok {
		t.Fatalf("Remove = %v, %v", ok, err)
	}
	if restored.AiTools.Allocated != before.AiTools.Allocated ||
		!slices.Equal(restored.AiTools.ForStudents, before.AiTools.ForStudents) {
		t.Errorf("after remove: %+v, want %+v", restored.AiTools, before.AiTools)
	}
}

func TestAdd_Rejections(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	if _, err := b.Add(ctx, "Exam Simulator", models.TargetTeachers); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, tool, target string
		want               error
	}{
		{"nothing selected", "", models.TargetStudents, ErrNoSelection},
		{"bad target", "Lesson Planner", "Parents", ErrInvalidTarget},
		{"not in catalog", "Time Machine", models.TargetStudents, ErrUnknownTool},
		{"present in other list", "Exam Simulator", models.TargetStudents, ErrToolExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Add(ctx, tt.tool, tt.target); !errors.Is(err, tt.want) {
				t.Errorf("Add(%q, %q) err = %v, want %v", tt.tool, tt.target, err, tt.want)
			}
		})
	}
	if got := len(b.Activity()); got != 1 {
		t.Errorf("rejected adds logged activity: %d entries", got)
	}
}

func TestToggle_ActionReflectsPriorState(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)

	s, ok, err := b.Toggle(ctx, "Quiz Generator", models.TargetStudents)
	if err != nil || !ok || s.AiTools.ForStudents[0].Enabled {
		t.Fatalf("first toggle: %+v %v %v", s.AiTools.ForStudents, ok, err)
	}
	_, _, _ = b.Toggle(ctx, "Quiz Generator", models.TargetStudents)

	act := b.Activity()
	if len(act) != 2 || act[0].Action != models.ActionEnabled || act[1].Action != models.ActionDisabled {
		t.Errorf("activity = %+v", act)
	}
	if act[0].Timestamp != "2:03:09 PM" {
		t.Errorf("timestamp = %q, want 2:03:09 PM", act[0].Timestamp)
	}
}

func TestMissingToolIsNoop(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	before, _ := b.School(ctx)

	if _, ok, err := b.Toggle(ctx, "Quiz Generator", models.TargetTeachers); ok || err != nil {
		t.Errorf("Toggle(missing) = %v, %v", ok, err)
	}
	s, ok, err := b.Remove(ctx, "Lesson Planner", models.TargetStudents)
	if ok || err != nil || s.AiTools.Allocated != before.AiTools.Allocated {
		t.Errorf("Remove(missing) = %v, %v, allocated %d", ok, err, s.AiTools.Allocated)
	}
	if len(b.Activity()) != 0 {
		t.Error("no-op logged activity")
	}
}

func TestActivity_BoundedNewestFirst(t *testing.T) {
	ctx := context.Background()
	b := newBoard(t)
	for i := 0; i < 7; i++ {
		if _, _, err := b.Toggle(ctx, "Study Planner", models.TargetStudents); err != nil {
			t.Fatal(err)
		}
	}
	_, _ = b.Add(ctx, "Homework Assistant", models.TargetTeachers)

	act := b.Activity()
	if len(act) != ActivityLimit {
		t.Fatalf("len = %d, want %d", len(act), ActivityLimit)
	}
	if act[0].Action != models.ActionAdded || act[0].Name != "Homework Assistant" || act[0].Target != models.TargetTeachers {
		t.Errorf("newest = %+v", act[0])
	}
}

func TestAvailable(t *testing.T) {
	s := seed.SampleSchool()
	if got := Available(s); !slices.Equal(got, Catalog) {
		t.Errorf("Available(sample) = %v, want full catalog", got)
	}
	s.AiTools.ForTeachers = append(s.AiTools.ForTeachers, models.AiTool{Name: "Lesson Planner"})
	got := Available(s)
	if slices.Contains(got, "Lesson Planner") || len(got) != len(Catalog)-1 {
		t.Errorf("Available() = %v", got)
	}
}

func TestMissingSchool(t *testing.T) {
	repo := memstore.New(func(s models.SchoolData) int { return s.ID }, nil)
	b := NewBoard(repo, 7)
	if _, err := b.Add(context.Background(), "Lesson Planner", models.TargetStudents); !errors.Is(err, ErrNoSchool) {
		t.Errorf("Add err = %v, want ErrNoSchool", err)
	}
	if _, err := b.School(context.Background()); !errors.Is(err, ErrNoSchool) {
		t.Errorf("School err = %v, want ErrNoSchool", err)
	}
}
