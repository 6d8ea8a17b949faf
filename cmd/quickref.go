package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triagekit/triagetree/internal/report"
)

var quickrefCmd = &cobra.Command{
	Use:   "quickref",
	Short: "Print the priority framework reference card",
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		fmt.Println(report.New(plain).QuickRef())
	},
}
