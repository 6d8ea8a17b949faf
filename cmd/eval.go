package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triagekit/triagetree/internal/engine"
	"github.com/triagekit/triagetree/internal/eval"
	"github.com/triagekit/triagetree/internal/question"
	"github.com/triagekit/triagetree/internal/report"
)

var evalCmd = &cobra.Command{
	Use:   "eval <bank.json>",
	Short: "Evaluate prediction accuracy against a graded question bank",
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

		ev := eval.New(eng)
		ev.OnResult = func(q *question.Question, p *engine.Prediction, _ bool) {
			session.record(q, p)
		}

		rep := ev.Run(questions)

		plain, _ := cmd.Flags().GetBool("plain")
		fmt.Println(report.New(plain).Evaluation(rep))

		return session.save()
	},
}

func init() {
	addEngineFlags(evalCmd)
}
