package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/lexio/internal/catalog"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Browse the word catalog",
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words (optionally filtered by unit or category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, _ := cmd.Flags().GetInt("unit")
		category, _ := cmd.Flags().GetString("category")

		cat, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load word catalog: %w", err)
		}

		opts := catalog.FilterOpts{Category: category}
		if cmd.Flags().Changed("unit") {
			u := catalog.Unit(unit)
			opts.Unit = &u
		}

		words := cat.Filter(opts)
		if len(words) == 0 {
			return fmt.Errorf("no words match the given filters")
		}

		fmt.Printf("%-4s %-16s %-14s %-10s %-12s %-8s %s\n",
			"ID", "ENGLISH", "PHONETIC", "CHINESE", "UNIT", "LEVEL", "CATEGORY")
		fmt.Println(strings.Repeat("-", 78))
		for _, w := range words {
			fmt.Printf("%-4d %-16s %-14s %-10s %-12s %-8s %s\n",
				w.ID, w.English, w.Phonetic, w.Chinese, w.Unit.Label(), w.Difficulty, w.Category)
		}
		fmt.Printf("\n%d words\n", len(words))
		return nil
	},
}

var wordsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid word id %q", args[0])
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load word catalog: %w", err)
		}

		w, ok := cat.ByID(id)
		if !ok {
			return fmt.Errorf("no word with id %d", id)
		}

		fmt.Printf("English:    %s\n", w.English)
		fmt.Printf("Phonetic:   %s\n", w.Phonetic)
		fmt.Printf("Chinese:    %s\n", w.Chinese)
		fmt.Printf("Unit:       %s\n", w.Unit.Label())
		fmt.Printf("Category:   %s\n", w.Category)
		fmt.Printf("Difficulty: %s\n", w.Difficulty)
		return nil
	},
}

func init() {
	wordsListCmd.Flags().Int("unit", 0, "Filter by unit number (0 for general)")
	wordsListCmd.Flags().String("category", "", "Filter by category")

	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsShowCmd)
}
