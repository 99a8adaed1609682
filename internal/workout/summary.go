package workout

import "github.com/misterclayt0n/ironlog/internal/models"

const (
	ActionLogSet      = "Log Set & Start Rest"
	ActionLogExtraSet = "Log Extra Set & Start Rest"
)

type ItemProgress struct {
	Name   string
	Done   int
	Target int
}

type Summary struct {
	Items     []ItemProgress
	SetsDone  int
	SetsPlan  int
	Volume    float64 // sum of weight x reps
	NextLabel string
}

// Summarize derives the figures the front end shows for a live workout.
func Summarize(w *models.ActiveWorkout) Summary {
	var s Summary
	if w == nil {
		return s
	}
	for _, item := range w.Items {
		s.Items = append(s.Items, ItemProgress{Name: item.Name, Done: len(item.SetsCompleted), Target: item.TargetSets})
		s.SetsDone += len(item.SetsCompleted)
		s.SetsPlan += item.TargetSets
		for _, set := range item.SetsCompleted {
			s.Volume += set.Weight * float64(set.Reps)
		}
	}

	s.NextLabel = ActionLogSet
	if cur := w.Current(); cur != nil && len(cur.SetsCompleted) >= cur.TargetSets {
		s.NextLabel = ActionLogExtraSet
	}
	return s
}
