// Package report renders predictions and evaluation results for the
// terminal. Styled output is the default; Plain mode strips styling for
// pipes and logs.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/eval"
	"github.com/triagekit/triagetree/internal/priority"
	"github.com/triagekit/triagetree/internal/question"
)

// Renderer formats predictions and evaluation reports.
type Renderer struct {
	// Plain disables all styling.
	Plain bool
}

// New creates a Renderer.
func New(plain bool) *Renderer {
	return &Renderer{Plain: plain}
}

// Prediction renders one prediction: the chosen answer, every option with
// its tier and score, and the decision trace when present.
func (r *Renderer) Prediction(q *question.Question, p *engine.Prediction) string {
	var b strings.Builder

	b.WriteString(r.style(styleTitle, q.ID))
	if p.NoSignal {
		b.WriteString(r.style(styleDim, "  (no signal — fallback answer)"))
	}
	b.WriteString("\n")
	b.WriteString(r.style(styleDim, truncate(q.Stem, 100)))
	b.WriteString("\n\n")

	chosen := make(map[string]bool, len(p.Chosen))
	for _, l := range p.Chosen {
		chosen[l] = true
	}

	for _, label := range q.Labels() {
		score := p.Scores[label]
		marker := "  "
		if chosen[label] {
			marker = r.style(styleChosen, "▸ ")
			if r.Plain {
				marker = "* "
			}
		}
		line := fmt.Sprintf("%s%s. %s", marker, label, truncate(q.Options[label], 60))
		b.WriteString(line)
		if score.Tier != priority.TierNone {
			b.WriteString("  ")
			b.WriteString(r.tier(score.Tier))
			b.WriteString(r.style(styleDim, fmt.Sprintf(" %.2f", score.Score)))
		}
		b.WriteString("\n")
	}

	if len(p.Chosen) == 0 {
		b.WriteString("\n")
		b.WriteString(r.style(styleDim, "No options selected."))
		b.WriteString("\n")
	} else if q.Format == question.FormatOrdered {
		b.WriteString("\n")
		b.WriteString("Order: " + strings.Join(p.Chosen, " → "))
		b.WriteString("\n")
	}

	if len(p.Trace) > 0 {
		b.WriteString("\n")
		b.WriteString(r.style(styleDim, "Trace:"))
		b.WriteString("\n")
		for _, ev := range p.Trace {
			b.WriteString(r.style(styleDim, "  "+formatTrace(ev)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Evaluation renders the aggregate summary of an evaluation run, plus a
// line for each question that was graded wrong.
func (r *Renderer) Evaluation(rep *eval.Report) string {
	s := rep.Summary
	var b strings.Builder

	b.WriteString(r.style(styleTitle, "Evaluation"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Questions: %d graded, %d skipped (no answer key)\n", s.Graded, s.Skipped)
	if s.Graded == 0 {
		return r.card(b.String())
	}

	accLine := fmt.Sprintf("Accuracy:  %.1f%% (%d/%d), 95%% CI [%.1f%%, %.1f%%]",
		s.Accuracy*100, s.Exact, s.Graded, s.WilsonLow*100, s.WilsonHigh*100)
	if s.Accuracy >= 0.5 {
		b.WriteString(r.style(styleCorrect, accLine))
	} else {
		b.WriteString(r.style(styleIncorrect, accLine))
	}
	b.WriteString("\n")
	if s.NoSignal > 0 {
		fmt.Fprintf(&b, "No-signal fallbacks: %d\n", s.NoSignal)
	}

	if fs, ok := s.ByFormat[question.FormatMulti]; ok {
		fmt.Fprintf(&b, "\nSATA (%d): exact %.1f%%, precision %.2f, recall %.2f, F1 %.2f\n",
			fs.Count, fs.Accuracy*100, s.MeanPrecision, s.MeanRecall, s.MeanF1)
	}
	if fs, ok := s.ByFormat[question.FormatOrdered]; ok {
		fmt.Fprintf(&b, "\nOrdered (%d): exact %.1f%%, mean Kendall tau %.2f\n",
			fs.Count, fs.Accuracy*100, s.MeanTau)
	}

	if len(s.ByCategory) > 0 {
		b.WriteString("\nBy category:\n")
		for _, cat := range sortedKeys(s.ByCategory) {
			cs := s.ByCategory[cat]
			fmt.Fprintf(&b, "  %-20s %.1f%% (%d/%d)\n", cat, cs.Accuracy*100, cs.Exact, cs.Count)
		}
	}

	var missed []eval.QuestionResult
	for _, res := range rep.Results {
		if !res.Exact {
			missed = append(missed, res)
		}
	}
	if len(missed) > 0 {
		b.WriteString("\nMissed:\n")
		for _, res := range missed {
			fmt.Fprintf(&b, "  %s: chose [%s], correct [%s]\n",
				res.QuestionID, strings.Join(res.Chosen, " "), strings.Join(res.Correct, " "))
		}
	}

	return r.card(b.String())
}

// QuickRef renders the priority framework reference card.
func (r *Renderer) QuickRef() string {
	return r.card(priority.QuickReference)
}

func (r *Renderer) style(s interface{ Render(...string) string }, text string) string {
	if r.Plain {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) tier(t priority.Tier) string {
	name := priority.DisplayName(t)
	if r.Plain {
		return name
	}
	if st, ok := tierStyles[t]; ok {
		return st.Render(name)
	}
	return name
}

func (r *Renderer) card(content string) string {
	if r.Plain {
		return content
	}
	return styleCard.Render(strings.TrimRight(content, "\n"))
}

func formatTrace(ev engine.TraceEvent) string {
	if ev.Label != "" {
		return fmt.Sprintf("[%s] %s: %s", ev.Rule, ev.Label, ev.Detail)
	}
	return fmt.Sprintf("[%s] %s", ev.Rule, ev.Detail)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func sortedKeys(m map[string]eval.FormatSummary) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
