package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/triagekit/triagetree/internal/knowledge"
	"github.com/triagekit/triagetree/internal/lexicon"
	"github.com/triagekit/triagetree/internal/llm"
	"github.com/triagekit/triagetree/internal/priority"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect and extend the keyword lexicon",
}

var lexiconListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lexicon entries grouped by tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		tierFilter, _ := cmd.Flags().GetString("tier")

		lex := lexicon.Default()
		byTier := make(map[priority.Tier][]lexicon.Entry)
		for _, e := range lex.AllEntries() {
			byTier[e.Tier] = append(byTier[e.Tier], e)
		}

		for _, tier := range priority.AllTiers() {
			if tierFilter != "" && string(tier) != tierFilter {
				continue
			}
			entries := byTier[tier]
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].SubCategory != entries[j].SubCategory {
					return entries[i].SubCategory < entries[j].SubCategory
				}
				return entries[i].Keyword < entries[j].Keyword
			})

			fmt.Println(priority.DisplayName(tier))
			fmt.Println(strings.Repeat("─", 48))
			for _, e := range entries {
				fmt.Printf("  %-16s  %-24s  %.2f\n", e.SubCategory, e.Keyword, e.Weight)
			}
			fmt.Println()
		}
		return nil
	},
}

var lexiconEnrichCmd = &cobra.Command{
	Use:   "enrich <term>...",
	Short: "Classify clinical terms into lexicon candidates via an LLM",
	Long: "Sends bare clinical terms (never question text) to the configured LLM\n" +
		"provider and prints candidate lexicon entries for review.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}

		helper := knowledge.New(provider, knowledge.DefaultConfig())
		cands, err := helper.Enrich(ctx, args)
		if err != nil {
			return err
		}

		if len(cands) == 0 {
			fmt.Println("No candidates returned.")
			return nil
		}

		accepted := make(map[string]bool)
		for _, e := range knowledge.Entries(cands) {
			accepted[e.Key()] = true
		}

		fmt.Printf("%-24s  %-16s  %-16s  %6s  %s\n", "Keyword", "Tier", "Sub-category", "Weight", "OK")
		fmt.Println(strings.Repeat("─", 80))
		for _, c := range cands {
			ok := "✗"
			key := string(c.SubCategory) + ":" + strings.ToLower(c.Keyword)
			if accepted[key] {
				ok = "✓"
			}
			tier := string(c.Tier)
			if c.Tier == priority.TierNone {
				tier = "(none)"
			}
			fmt.Printf("%-24s  %-16s  %-16s  %6.2f  %s\n", c.Keyword, tier, c.SubCategory, c.Weight, ok)
			if c.Rationale != "" {
				fmt.Printf("  %s\n", c.Rationale)
			}
		}
		return nil
	},
}

func init() {
	lexiconListCmd.Flags().String("tier", "", "Show only one tier (life-threat, safety, physical-need, nursing-process)")

	lexiconCmd.AddCommand(lexiconListCmd)
	lexiconCmd.AddCommand(lexiconEnrichCmd)
}
