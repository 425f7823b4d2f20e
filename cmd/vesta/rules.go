package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vesta-budget/vesta/internal/cli"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage merchant rules",
		Long: `Merchant rules override the built-in classifier: the highest-priority
active rule whose pattern matches a transaction description decides its
category.`,
	}

	cmd.AddCommand(listRulesCmd())
	cmd.AddCommand(addRuleCmd())
	cmd.AddCommand(deleteRuleCmd())

	return cmd
}

func listRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List merchant rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			activeOnly, _ := cmd.Flags().GetBool("active")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ruleSet, err := store.GetMerchantRules(ctx, activeOnly)
			if err != nil {
				return fmt.Errorf("failed to get merchant rules: %w", err)
			}

			if len(ruleSet) == 0 {
				fmt.Println(cli.FormatWarning("No merchant rules found. Use 'vesta rules add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRIORITY\tMODE\tPATTERN\tCATEGORY\tACTIVE")
			for _, rule := range ruleSet {
				category := rule.Category
				if rule.Subcategory != "" {
					category += " / " + rule.Subcategory
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%t\n",
					rule.ID, rule.Priority, rule.Mode, rule.Pattern, category, rule.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Bool("active", false, "show only active rules")

	return cmd
}

func addRuleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <pattern> <category>",
		Short: "Add a merchant rule",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mode, _ := cmd.Flags().GetString("mode")
			subcategory, _ := cmd.Flags().GetString("subcategory")
			priority, _ := cmd.Flags().GetInt("priority")

			rule := &model.MerchantRule{
				Pattern:     args[0],
				Mode:        model.MatchMode(mode),
				Category:    args[1],
				Subcategory: subcategory,
				Priority:    priority,
				IsActive:    true,
			}
			if err := rules.ValidateRule(rule); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.CreateMerchantRule(ctx, rule); err != nil {
				return fmt.Errorf("failed to create merchant rule: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created rule %d: %s %q → %s",
				rule.ID, rule.Mode, rule.Pattern, rule.Category)))
			return nil
		},
	}

	cmd.Flags().String("mode", string(model.MatchContains), "match mode (contains, starts_with, ends_with, regex)")
	cmd.Flags().String("subcategory", "", "subcategory to assign")
	cmd.Flags().Int("priority", 0, "rule priority (higher wins)")

	return cmd
}

func deleteRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a merchant rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rule id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteMerchantRule(ctx, id); err != nil {
				return fmt.Errorf("failed to delete merchant rule: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted rule %d", id)))
			return nil
		},
	}
}
