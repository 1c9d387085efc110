package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errOffline = errors.New("no bearer token configured; pass --token or set ADAPTER_TOKEN")

var refreshCmd = &cobra.Command{
	Use:   "refresh <list-id>",
	Short: "Re-download a list from the remote store",
	Long: `Refresh discards the cached copy of a list and downloads it again.
Unsent local changes to the list are overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefresh,
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Promote locally staged lists to the remote store",
	Args:  cobra.NoArgs,
	RunE:  runMerge,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Merge staged lists, deliver queued writes and refresh the index",
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Keep synchronizing in the foreground until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Run stops the app itself.
		err := app.Run()
		app = nil
		return err
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd, mergeCmd, syncCmd, runCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	if !app.Online() {
		return errOffline
	}

	content, err := app.Remote().ForceRefreshListData(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("refresh list: %w", err)
	}
	if content == nil {
		return fmt.Errorf("list %s not found remotely", args[0])
	}

	printList(content)
	return nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	if !app.Online() {
		return errOffline
	}

	result, err := app.Remote().MergeLocalListsWithRemote(cmd.Context())
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	fmt.Printf("merged %d list(s)\n", result.MergedLists)
	return flush(cmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	report, err := app.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if !report.Online {
		fmt.Printf("offline: changes stay local (%d queued)\n", report.Pending)
		return nil
	}

	fmt.Printf("merged %d list(s), delivered %d change(s), %d still queued\n",
		report.Merge.MergedLists, report.Delivered, report.Pending)
	return nil
}
