package main

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shop-sync/models"
)

var listsCmd = &cobra.Command{
	Use:     "lists",
	Short:   "Show all shopping lists",
	Example: `  shop-sync lists --token $TOKEN`,
	Args:    cobra.NoArgs,
	RunE:    runLists,
}

var showCmd = &cobra.Command{
	Use:   "show <list-id>",
	Short: "Show the items of a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var createCmd = &cobra.Command{
	Use:     "create <name>",
	Short:   "Create an empty shopping list",
	Example: `  shop-sync create "Weekend groceries"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCreate,
}

var renameCmd = &cobra.Command{
	Use:   "rename <list-id> <name>",
	Short: "Rename a shopping list",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <list-id>",
	Short: "Delete a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(listsCmd, showCmd, createCmd, renameCmd, deleteCmd)
}

func runLists(cmd *cobra.Command, args []string) error {
	result, err := app.Lists().GetShoppingLists(cmd.Context())
	if err != nil {
		return fmt.Errorf("get lists: %w", err)
	}

	summaries := make([]models.ListSummary, 0, len(result.Data))
	for _, summary := range result.Data {
		summaries = append(summaries, summary)
	}
	slices.SortFunc(summaries, func(a, b models.ListSummary) int {
		return cmp.Or(strings.Compare(a.CreatedAt, b.CreatedAt), strings.Compare(a.ID, b.ID))
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDONE\tUPDATED")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\n", s.ID, s.Name, s.CompletedCount, s.ItemCount, s.UpdatedAt)
	}
	if err = w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d list(s), state: %s\n", len(summaries), result.State)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	result, err := app.Lists().GetShoppingListData(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get list: %w", err)
	}
	if result.Data == nil {
		return fmt.Errorf("list %s not found", args[0])
	}

	printList(result.Data)
	return nil
}

func printList(content *models.ListContent) {
	fmt.Printf("%s (%s)\n", content.Name, content.ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, item := range content.Items {
		mark := "[ ]"
		if item.Purchased {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mark, item.ID, item.Name, item.Quantity, item.Category)
	}
	_ = w.Flush()
}

func runCreate(cmd *cobra.Command, args []string) error {
	summary, err := app.Lists().CreateShoppingList(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("create list: %w", err)
	}

	fmt.Println(summary.ID)
	return flush(cmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	if err := app.Lists().RenameShoppingList(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("rename list: %w", err)
	}
	return flush(cmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := app.Lists().DeleteShoppingList(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

// flush delivers the writes a command just queued so that short-lived
// invocations do not leave them for the next sync.
func flush(cmd *cobra.Command) error {
	delivered, err := app.Flush(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "changes saved locally, delivery failed: %v\n", err)
		return nil
	}
	if delivered > 0 {
		fmt.Fprintf(os.Stderr, "%d change(s) delivered\n", delivered)
	}
	return nil
}
