package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/learning"
	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/matcher"
	"github.com/triagekit/triagetree/internal/question"
	"github.com/triagekit/triagetree/internal/report"
	"github.com/triagekit/triagetree/internal/store"
)

var predictCmd = &cobra.Command{
	Use:   "predict <bank.json>",
	Short: "Predict answers for a question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := question.LoadBank(args[0])
		if err != nil {
			return err
		}

		eng, session, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer session.close()

		plain, _ := cmd.Flags().GetBool("plain")
		r := report.New(plain)

		for _, q := range questions {
			p := eng.Predict(q)
			fmt.Println(r.Prediction(q, p))
			session.record(q, p)
		}

		return session.save()
	},
}

func init() {
	addEngineFlags(predictCmd)
}

// addEngineFlags registers the flags shared by predict and eval.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("trace", false, "Record and show the decision trace")
	cmd.Flags().Bool("include-stem", false, "Score stem keywords alongside option keywords")
	cmd.Flags().Bool("context", false, "Enable the context-aware vital-sign strategy")
	cmd.Flags().Bool("learn", false, "Record outcomes and adapt keyword weights")
}

// learnSession holds the optional learning wiring for one command run.
// With --learn off every method is a no-op.
type learnSession struct {
	db    *store.Store
	store *learning.Store
}

func (s *learnSession) record(q *question.Question, p *engine.Prediction) {
	if s.store == nil {
		return
	}
	if q.HasAnswerKey() {
		if err := s.store.RecordOutcome(q, p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record outcome for %s: %v\n", q.ID, err)
		}
	}
	if err := s.db.PredictionRepo().Append(q, p); err != nil {
		fmt.Fprintf(os.Stderr, "warning: log prediction for %s: %v\n", q.ID, err)
	}
}

func (s *learnSession) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(); err != nil {
		return fmt.Errorf("save learning records: %w", err)
	}
	return nil
}

func (s *learnSession) close() {
	if s.db != nil {
		s.db.Close()
	}
}

// buildEngine assembles the lexicon and engine from command flags. When
// --learn is set it also opens the database and attaches the adaptive
// weight store.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *learnSession, error) {
	trace, _ := cmd.Flags().GetBool("trace")
	includeStem, _ := cmd.Flags().GetBool("include-stem")
	contextAware, _ := cmd.Flags().GetBool("context")
	learn, _ := cmd.Flags().GetBool("learn")

	cfg := engine.DefaultConfig()
	cfg.Trace = trace
	cfg.IncludeStem = includeStem
	cfg.ContextAware = contextAware

	lex := lexicon.Default()
	session := &learnSession{}

	if learn {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return nil, nil, fmt.Errorf("resolve database path: %w", err)
		}
		db, err := store.Open(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		ls := learning.NewStore(learning.DefaultConfig(), db.LearningRepo())
		if err := ls.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: load learning records: %v\n", err)
		}
		lex.SetMultiplierSource(ls)
		session.db = db
		session.store = ls
	}

	eng := engine.New(lex, matcher.DefaultConfig(), cfg)
	return eng, session, nil
}
