package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vesta-budget/vesta/internal/cli"
	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/importer"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement",
		Long: `Parse a bank statement export, preview the classified transactions, and
import the selected ones into an account.

The bank is detected from the file extension (.xlsx = Alpha Bank,
.csv = Raiffeisen, .pdf = Sberbank); use --bank to override.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("bank", "", "bank code (alpha, raiffeisen, sberbank); overrides detection")
	cmd.Flags().Int64("account", 1, "account ID to import into")
	cmd.Flags().Bool("yes", false, "skip confirmation and import everything non-duplicate")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	filePath := args[0]

	bankCode, _ := cmd.Flags().GetString("bank")
	accountID, _ := cmd.Flags().GetInt64("account")
	autoConfirm, _ := cmd.Flags().GetBool("yes")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if _, err := store.GetAccount(ctx, accountID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("account %d does not exist; create one with 'vesta accounts add'", accountID)
		}
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open statement: %w", err)
	}
	defer func() { _ = file.Close() }()

	sessions := importer.NewSessionStore(importer.DefaultSessionTTL)
	defer sessions.Stop()
	svc := importer.NewService(buildRegistry(), store, sessions)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Parsing statement..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	result, err := svc.Import(ctx, importer.ImportRequest{
		FileName:  filePath,
		Data:      file,
		BankCode:  bankCode,
		AccountID: accountID,
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Println(cli.FormatWarning("No transactions found in " + filePath))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s — %d transaction(s)", result.Bank.Name, result.Total)))
	fmt.Print(cli.RenderPreview(result.Records))
	fmt.Println(cli.RenderImportSummary(result.Records))

	if !autoConfirm {
		ok, err := promptYesNo(fmt.Sprintf("Import into account %d?", accountID))
		if err != nil {
			return err
		}
		if !ok {
			svc.Cancel(result.SessionID)
			fmt.Println(cli.FormatWarning("Import cancelled"))
			return nil
		}
	}

	confirm, err := svc.Confirm(ctx, result.SessionID)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s), balance change %s",
		confirm.Imported, confirm.BalanceDelta.StringFixed(2))))

	return nil
}

func promptYesNo(question string) (bool, error) {
	fmt.Print(cli.FormatPrompt(question + " [y/N]"))

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
