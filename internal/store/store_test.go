package store

import (
	"path/filepath"
	"testing"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/learning"
	"github.com/triagekit/triagetree/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)

	var n int
	err := s.DB().QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table'
		 AND name IN ('learning_records', 'predictions')`).Scan(&n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("got %d tables, want 2", n)
	}
}

func TestLearningRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearningRepo()

	records := map[string]learning.Record{
		"circulation:cpr":        {Pattern: "circulation:cpr", Successes: 4, Failures: 1, Multiplier: 1.3},
		"assessment:vital signs": {Pattern: "assessment:vital signs", Successes: 1, Failures: 3, Multiplier: 0.75},
	}
	if err := repo.Save(records); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d records, want 2", len(loaded))
	}
	got := loaded["circulation:cpr"]
	if got.Successes != 4 || got.Failures != 1 || got.Multiplier != 1.3 {
		t.Errorf("got %+v", got)
	}
}

func TestLearningRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearningRepo()

	if err := repo.Save(map[string]learning.Record{
		"pain:pain": {Pattern: "pain:pain", Successes: 1, Multiplier: 1.0},
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(map[string]learning.Record{
		"pain:pain": {Pattern: "pain:pain", Successes: 5, Failures: 2, Multiplier: 1.2},
	}); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("got %d records, want 1 after upsert", len(loaded))
	}
	if got := loaded["pain:pain"]; got.Successes != 5 || got.Failures != 2 {
		t.Errorf("got %+v", got)
	}
}

func TestLearningRepoEmptyLoad(t *testing.T) {
	s := openTestStore(t)
	loaded, err := s.LearningRepo().Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("got %d records from a fresh database", len(loaded))
	}
}

func gradedQuestion(t *testing.T) *question.Question {
	t.Helper()
	q, err := question.New("q1", "Which action first?",
		map[string]string{"A": "Begin compressions", "B": "Document findings"},
		question.FormatSingle)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.AttachCorrectAnswers("A"); err != nil {
		t.Fatal(err)
	}
	return q
}

func TestPredictionRepoAppendGraded(t *testing.T) {
	s := openTestStore(t)
	repo := s.PredictionRepo()

	q := gradedQuestion(t)
	p := &engine.Prediction{ID: "pred-1", QuestionID: q.ID, Chosen: []string{"A"}}
	if err := repo.Append(q, p); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.ID != "pred-1" || row.QuestionID != "q1" {
		t.Errorf("got %+v", row)
	}
	if row.WasCorrect == nil || !*row.WasCorrect {
		t.Error("prediction should be graded correct")
	}
	if len(row.Correct) != 1 || row.Correct[0] != "A" {
		t.Errorf("got correct %v", row.Correct)
	}
}

func TestPredictionRepoAppendUngraded(t *testing.T) {
	s := openTestStore(t)
	repo := s.PredictionRepo()

	q, err := question.New("q2", "stem",
		map[string]string{"A": "x", "B": "y"}, question.FormatSingle)
	if err != nil {
		t.Fatal(err)
	}
	p := &engine.Prediction{ID: "pred-2", QuestionID: q.ID, Chosen: []string{"B"}, NoSignal: true}
	if err := repo.Append(q, p); err != nil {
		t.Fatal(err)
	}

	rows, err := repo.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	row := rows[0]
	if row.WasCorrect != nil {
		t.Error("ungraded prediction must have a nil WasCorrect")
	}
	if !row.NoSignal {
		t.Error("no-signal flag lost")
	}
}
