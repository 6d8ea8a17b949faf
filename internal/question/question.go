package question

import (
	"fmt"
	"sort"
	"strings"
)

// Format is the question answer format.
type Format string

const (
	// FormatSingle expects exactly one correct option.
	FormatSingle Format = "single"
	// FormatMulti is "select all that apply".
	FormatMulti Format = "sata"
	// FormatOrdered expects every option, ranked best-first.
	FormatOrdered Format = "ordered"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == FormatSingle || f == FormatMulti || f == FormatOrdered
}

// Question is a single multiple-choice item. Treat it as immutable once
// built: the one sanctioned late mutation is attaching the correct answer
// set for learning feedback via AttachCorrectAnswers.
type Question struct {
	ID             string
	Stem           string
	Options        map[string]string // label -> option text
	CorrectAnswers map[string]bool   // may be empty at prediction time
	CorrectOrder   []string          // ordered format only: best-first sequence
	Format         Format
	Category       string // free-form tag, e.g. "priority"
}

// New builds and validates a question. CorrectAnswers may be nil.
func New(id, stem string, options map[string]string, format Format) (*Question, error) {
	q := &Question{
		ID:      id,
		Stem:    stem,
		Options: options,
		Format:  format,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks structural invariants. A malformed question never enters
// the scoring path.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Stem) == "" {
		return &MalformedQuestionError{ID: q.ID, Reason: "missing stem"}
	}
	if len(q.Options) == 0 {
		return &MalformedQuestionError{ID: q.ID, Reason: "no options"}
	}
	if !q.Format.Valid() {
		return &MalformedQuestionError{ID: q.ID, Reason: fmt.Sprintf("unknown format %q", q.Format)}
	}
	for label, text := range q.Options {
		if strings.TrimSpace(label) == "" {
			return &MalformedQuestionError{ID: q.ID, Reason: "empty option label"}
		}
		if strings.TrimSpace(text) == "" {
			return &MalformedQuestionError{ID: q.ID, Reason: fmt.Sprintf("option %s has empty text", label)}
		}
	}
	for label := range q.CorrectAnswers {
		if _, ok := q.Options[label]; !ok {
			return &MalformedQuestionError{
				ID:     q.ID,
				Reason: fmt.Sprintf("correct answer %q is not an option", label),
			}
		}
	}
	return nil
}

// AttachCorrectAnswers records the answer key after construction, for
// learning feedback. Every label must exist in Options. For the ordered
// format the argument order is the correct best-first sequence.
func (q *Question) AttachCorrectAnswers(labels ...string) error {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		if _, ok := q.Options[l]; !ok {
			return &MalformedQuestionError{
				ID:     q.ID,
				Reason: fmt.Sprintf("correct answer %q is not an option", l),
			}
		}
		set[l] = true
	}
	q.CorrectAnswers = set
	if q.Format == FormatOrdered {
		q.CorrectOrder = append([]string(nil), labels...)
	}
	return nil
}

// Labels returns the option labels in sorted order. Deterministic
// iteration matters: the tie-breaker and the all-zero fallback both lean
// on lexical label order.
func (q *Question) Labels() []string {
	labels := make([]string, 0, len(q.Options))
	for l := range q.Options {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// HasAnswerKey reports whether a correct answer set is attached.
func (q *Question) HasAnswerKey() bool {
	return len(q.CorrectAnswers) > 0
}

// MalformedQuestionError reports a structurally invalid question,
// surfaced at construction time.
type MalformedQuestionError struct {
	ID     string
	Reason string
}

func (e *MalformedQuestionError) Error() string {
	if e.ID == "" {
		return "malformed question: " + e.Reason
	}
	return fmt.Sprintf("malformed question %s: %s", e.ID, e.Reason)
}
