package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/errors"
	"github.com/felixgeelhaar/coffman/internal/log"
	"github.com/felixgeelhaar/coffman/internal/store"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

func newHistoryCmd(cc *CommandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List rankings recorded with --cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cc)
			if err != nil {
				return err
			}
			defer closeStore(st, cc.Config.Store.Path)

			reports, err := st.List(cmd.Context(), limit)
			if err != nil {
				return errors.Wrap(errors.ErrCodeStoreRead, "failed to list rankings", err)
			}

			formatter, err := cc.Formatter()
			if err != nil {
				return err
			}
			return formatter.Format(ux.History(reports))
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to show (0 = all)")

	cmd.AddCommand(newHistoryClearCmd(cc))
	return cmd
}

func newHistoryClearCmd(cc *CommandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded rankings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !ux.Confirm(cmd.InOrStdin(), cc.Out, "Delete all recorded rankings?", false) {
				fmt.Fprintln(cc.Out, "Aborted.")
				return nil
			}

			st, err := openStore(cc)
			if err != nil {
				return err
			}
			defer closeStore(st, cc.Config.Store.Path)

			n, err := st.Clear(cmd.Context())
			if err != nil {
				return errors.Wrap(errors.ErrCodeStoreWrite, "failed to clear rankings", err)
			}
			fmt.Fprintf(cc.Out, "Deleted %d rankings.\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func openStore(cc *CommandContext) (*store.Store, error) {
	st, err := store.Open(cc.Config.Store.Path)
	if err != nil {
		return nil, errors.NewStoreOpenError(cc.Config.Store.Path, err)
	}
	return st, nil
}

// closeStore is deferred by commands that opened the store.
func closeStore(st *store.Store, path string) {
	if err := st.Close(); err != nil {
		log.DefaultLogger().Warn("Failed to close store", "path", path, "error", err)
		return
	}
	log.DefaultLogger().Debug("store closed", "path", path)
}
