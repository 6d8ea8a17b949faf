package report

import (
	"strings"
	"testing"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/eval"
	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/matcher"
	"github.com/triagekit/triagetree/internal/question"
)

func samplePrediction(t *testing.T) (*question.Question, *engine.Prediction) {
	t.Helper()
	q, err := question.New("q1", "Which action should the nurse take first?",
		map[string]string{
			"A": "Begin chest compressions",
			"B": "Document the findings",
		}, question.FormatSingle)
	if err != nil {
		t.Fatal(err)
	}
	eng := engine.New(lexicon.Default(), matcher.DefaultConfig(), engine.Config{Trace: true, Exceptions: true})
	return q, eng.Predict(q)
}

func TestPredictionPlainOutput(t *testing.T) {
	q, p := samplePrediction(t)
	out := New(true).Prediction(q, p)

	if !strings.Contains(out, "q1") {
		t.Error("output missing question ID")
	}
	if !strings.Contains(out, "* B") {
		t.Errorf("output should mark the chosen option:\n%s", out)
	}
	if !strings.Contains(out, "Trace:") {
		t.Error("traced prediction should render its trace")
	}
	if !strings.Contains(out, "Life Threats") {
		t.Error("output should name the selected tier")
	}
}

func TestPredictionNoSignalNote(t *testing.T) {
	q, err := question.New("q2", "Which statement is true?",
		map[string]string{"A": "Alpha", "B": "Beta"}, question.FormatSingle)
	if err != nil {
		t.Fatal(err)
	}
	eng := engine.New(lexicon.Default(), matcher.DefaultConfig(), engine.DefaultConfig())
	out := New(true).Prediction(q, eng.Predict(q))

	if !strings.Contains(out, "no signal") {
		t.Errorf("no-signal prediction should say so:\n%s", out)
	}
}

func TestEvaluationPlainOutput(t *testing.T) {
	rep := &eval.Report{
		Results: []eval.QuestionResult{
			{QuestionID: "q1", Format: question.FormatSingle, Chosen: []string{"A"}, Correct: []string{"B"}},
		},
		Summary: eval.Summary{
			Total: 2, Graded: 2, Exact: 1,
			Accuracy: 0.5, WilsonLow: 0.095, WilsonHigh: 0.905,
			ByFormat: map[question.Format]eval.FormatSummary{
				question.FormatSingle: {Count: 2, Exact: 1, Accuracy: 0.5},
			},
			ByCategory: map[string]eval.FormatSummary{},
		},
	}

	out := New(true).Evaluation(rep)
	if !strings.Contains(out, "50.0%") {
		t.Errorf("output missing accuracy:\n%s", out)
	}
	if !strings.Contains(out, "q1") {
		t.Error("missed questions should be listed")
	}
}

func TestQuickRefContainsAllTiers(t *testing.T) {
	out := New(true).QuickRef()
	for _, want := range []string{"LIFE THREATS", "SAFETY", "PHYSICAL NEEDS", "NURSING PROCESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("quick reference missing %q", want)
		}
	}
}
