package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-shop-sync/internal/utils"
	"github.com/MKhiriev/go-shop-sync/models"
)

var addItemCmd = &cobra.Command{
	Use:   "add-item <list-id> <name>",
	Short: "Append an item to a shopping list",
	Example: `  shop-sync add-item 0193... Milk --qty 2
  shop-sync add-item 0193... Apples --qty 1kg --category fruit`,
	Args: cobra.ExactArgs(2),
	RunE: runAddItem,
}

var checkCmd = &cobra.Command{
	Use:   "check <list-id> <item-id>",
	Short: "Mark an item as purchased",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

var removeItemCmd = &cobra.Command{
	Use:   "remove-item <list-id> <item-id>",
	Short: "Remove an item from a shopping list",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemoveItem,
}

var (
	itemQuantity string
	itemCategory string
	itemNotes    string
	uncheck      bool
)

func init() {
	rootCmd.AddCommand(addItemCmd, checkCmd, removeItemCmd)

	addItemCmd.Flags().StringVarP(&itemQuantity, "qty", "q", "", "Quantity (e.g. 2, 500g)")
	addItemCmd.Flags().StringVar(&itemCategory, "category", "", "Category label")
	addItemCmd.Flags().StringVar(&itemNotes, "notes", "", "Free-form notes")

	checkCmd.Flags().BoolVar(&uncheck, "uncheck", false, "Mark the item as not purchased")
}

func runAddItem(cmd *cobra.Command, args []string) error {
	item := models.Item{
		ID:       utils.NewUUIDGenerator().Generate(),
		Name:     args[1],
		Quantity: itemQuantity,
		Category: itemCategory,
		Notes:    itemNotes,
	}

	err := editList(cmd.Context(), args[0], func(content *models.ListContent) error {
		content.Items = append(content.Items, item)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println(item.ID)
	return flush(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	err := editList(cmd.Context(), args[0], func(content *models.ListContent) error {
		i := slices.IndexFunc(content.Items, func(item models.Item) bool { return item.ID == args[1] })
		if i < 0 {
			return fmt.Errorf("item %s not found", args[1])
		}
		content.Items[i].SetPurchased(!uncheck)
		return nil
	})
	if err != nil {
		return err
	}

	return flush(cmd)
}

func runRemoveItem(cmd *cobra.Command, args []string) error {
	err := editList(cmd.Context(), args[0], func(content *models.ListContent) error {
		before := len(content.Items)
		content.Items = slices.DeleteFunc(content.Items, func(item models.Item) bool { return item.ID == args[1] })
		if len(content.Items) == before {
			return fmt.Errorf("item %s not found", args[1])
		}
		return nil
	})
	if err != nil {
		return err
	}

	return flush(cmd)
}

// editList loads a list, applies edit and saves the whole content back.
func editList(ctx context.Context, listID string, edit func(*models.ListContent) error) error {
	lists := app.Lists()

	result, err := lists.GetShoppingListData(ctx, listID)
	if err != nil {
		return fmt.Errorf("get list: %w", err)
	}
	if result.Data == nil {
		return fmt.Errorf("list %s not found", listID)
	}

	if err = edit(result.Data); err != nil {
		return err
	}

	if err = lists.UpdateShoppingList(ctx, result.Data); err != nil {
		return fmt.Errorf("save list: %w", err)
	}
	return nil
}
