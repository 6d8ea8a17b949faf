package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/question"
)

// PredictionRow is one logged prediction.
type PredictionRow struct {
	ID         string
	QuestionID string
	Format     string
	Chosen     []string
	Correct    []string
	WasCorrect *bool // nil when the question had no answer key
	NoSignal   bool
	CreatedAt  time.Time
}

// PredictionRepo appends and queries the prediction log.
type PredictionRepo struct {
	store *Store
}

// PredictionRepo returns the prediction log repository.
func (s *Store) PredictionRepo() *PredictionRepo {
	return &PredictionRepo{store: s}
}

// Append logs one prediction. Grading columns are filled only when the
// question carries its answer key.
func (r *PredictionRepo) Append(q *question.Question, p *engine.Prediction) error {
	var correct any
	var wasCorrect any
	if q.HasAnswerKey() {
		correct = joinSet(q.CorrectAnswers)
		wasCorrect = boolToInt(setsEqual(p.Chosen, q.CorrectAnswers))
	}

	_, err := r.store.db.Exec(
		`INSERT INTO predictions (id, question_id, format, chosen, correct, was_correct, no_signal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, q.ID, string(q.Format), strings.Join(p.Chosen, ","),
		correct, wasCorrect, boolToInt(p.NoSignal),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append prediction: %w", err)
	}
	return nil
}

// Recent returns the newest predictions, newest first.
func (r *PredictionRepo) Recent(limit int) ([]PredictionRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.store.db.Query(
		`SELECT id, question_id, format, chosen, correct, was_correct, no_signal, created_at
		 FROM predictions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var out []PredictionRow
	for rows.Next() {
		var row PredictionRow
		var chosen string
		var correct *string
		var wasCorrect *int
		var noSignal int
		var created string
		if err := rows.Scan(&row.ID, &row.QuestionID, &row.Format, &chosen, &correct, &wasCorrect, &noSignal, &created); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		if chosen != "" {
			row.Chosen = strings.Split(chosen, ",")
		}
		if correct != nil && *correct != "" {
			row.Correct = strings.Split(*correct, ",")
		}
		if wasCorrect != nil {
			b := *wasCorrect != 0
			row.WasCorrect = &b
		}
		row.NoSignal = noSignal != 0
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			row.CreatedAt = t
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}
	return out, nil
}

func joinSet(set map[string]bool) string {
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}

func setsEqual(chosen []string, correct map[string]bool) bool {
	if len(chosen) != len(correct) {
		return false
	}
	for _, l := range chosen {
		if !correct[l] {
			return false
		}
	}
	return true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
