// Package eval grades engine predictions against answer keys and
// aggregates accuracy metrics for a question bank run.
package eval

import (
	"sort"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/question"
)

// QuestionResult is the graded outcome for one question.
type QuestionResult struct {
	QuestionID string
	Format     question.Format
	Chosen     []string
	Correct    []string
	Exact      bool
	NoSignal   bool

	// SATA only.
	Precision float64
	Recall    float64
	F1        float64

	// Ordered only.
	Tau float64
}

// FormatSummary aggregates results for one answer format.
type FormatSummary struct {
	Count    int
	Exact    int
	Accuracy float64
}

// Summary aggregates a full evaluation run.
type Summary struct {
	Total   int
	Graded  int
	Skipped int // no answer key attached
	Exact   int

	Accuracy   float64
	WilsonLow  float64
	WilsonHigh float64

	NoSignal int

	// Macro-averaged over SATA questions.
	MeanPrecision float64
	MeanRecall    float64
	MeanF1        float64

	// Mean Kendall tau over ordered questions.
	MeanTau float64

	ByFormat   map[question.Format]FormatSummary
	ByCategory map[string]FormatSummary
}

// Report is the full output of an evaluation run: per-question results in
// input order plus the aggregate summary.
type Report struct {
	Results []QuestionResult
	Summary Summary
}

// Predictor is the slice of the engine the evaluator needs.
type Predictor interface {
	Predict(q *question.Question) *engine.Prediction
}

// Evaluator grades a predictor against a question bank.
type Evaluator struct {
	predictor Predictor

	// OnResult, when set, is called after each graded question. The CLI
	// uses it to feed the learning store.
	OnResult func(q *question.Question, p *engine.Prediction, exact bool)
}

// New creates an Evaluator for the given predictor.
func New(p Predictor) *Evaluator {
	return &Evaluator{predictor: p}
}

// Run predicts every question and grades those with an answer key.
// Questions without a key are counted as skipped, not failed.
func (e *Evaluator) Run(questions []*question.Question) *Report {
	report := &Report{
		Summary: Summary{
			Total:      len(questions),
			ByFormat:   make(map[question.Format]FormatSummary),
			ByCategory: make(map[string]FormatSummary),
		},
	}

	var sataCount, orderedCount int
	for _, q := range questions {
		pred := e.predictor.Predict(q)
		if !q.HasAnswerKey() {
			report.Summary.Skipped++
			continue
		}

		r := grade(q, pred)
		report.Results = append(report.Results, r)
		report.Summary.Graded++
		if r.Exact {
			report.Summary.Exact++
		}
		if r.NoSignal {
			report.Summary.NoSignal++
		}
		if r.Format == question.FormatMulti {
			sataCount++
			report.Summary.MeanPrecision += r.Precision
			report.Summary.MeanRecall += r.Recall
			report.Summary.MeanF1 += r.F1
		}
		if r.Format == question.FormatOrdered {
			orderedCount++
			report.Summary.MeanTau += r.Tau
		}

		bumpSummary(report.Summary.ByFormat, r.Format, r.Exact)
		if q.Category != "" {
			bumpSummary(report.Summary.ByCategory, q.Category, r.Exact)
		}

		if e.OnResult != nil {
			e.OnResult(q, pred, r.Exact)
		}
	}

	s := &report.Summary
	if s.Graded > 0 {
		s.Accuracy = float64(s.Exact) / float64(s.Graded)
		s.WilsonLow, s.WilsonHigh = Wilson(s.Exact, s.Graded)
	}
	if sataCount > 0 {
		s.MeanPrecision /= float64(sataCount)
		s.MeanRecall /= float64(sataCount)
		s.MeanF1 /= float64(sataCount)
	}
	if orderedCount > 0 {
		s.MeanTau /= float64(orderedCount)
	}
	finalizeSummaries(s.ByFormat)
	finalizeSummaries(s.ByCategory)

	return report
}

func grade(q *question.Question, pred *engine.Prediction) QuestionResult {
	r := QuestionResult{
		QuestionID: q.ID,
		Format:     q.Format,
		Chosen:     pred.Chosen,
		NoSignal:   pred.NoSignal,
	}

	switch q.Format {
	case question.FormatOrdered:
		r.Correct = append([]string(nil), q.CorrectOrder...)
		r.Tau = KendallTau(pred.Chosen, q.CorrectOrder)
		r.Exact = sameSequence(pred.Chosen, q.CorrectOrder)
	default:
		r.Correct = sortedLabels(q.CorrectAnswers)
		chosen := make(map[string]bool, len(pred.Chosen))
		for _, l := range pred.Chosen {
			chosen[l] = true
		}
		r.Exact = sameSet(chosen, q.CorrectAnswers)
		if q.Format == question.FormatMulti {
			r.Precision, r.Recall, r.F1 = SetMetrics(chosen, q.CorrectAnswers)
		}
	}
	return r
}

func bumpSummary[K comparable](m map[K]FormatSummary, key K, exact bool) {
	s := m[key]
	s.Count++
	if exact {
		s.Exact++
	}
	m[key] = s
}

func finalizeSummaries[K comparable](m map[K]FormatSummary) {
	for k, s := range m {
		if s.Count > 0 {
			s.Accuracy = float64(s.Exact) / float64(s.Count)
		}
		m[k] = s
	}
}

func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for l := range a {
		if !b[l] {
			return false
		}
	}
	return true
}

func sameSequence(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedLabels(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
