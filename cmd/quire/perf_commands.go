package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quire/internal/collection"
)

func newPerfCommand(ctx *commandContext) *cobra.Command {
	perfCmd := &cobra.Command{
		Use:   "perf",
		Short: "Manage the performances of a piece",
	}

	perfCmd.AddCommand(newPerfListCommand(ctx))
	perfCmd.AddCommand(newPerfAddCommand(ctx))
	perfCmd.AddCommand(newPerfRemoveCommand(ctx))
	perfCmd.AddCommand(newPerfClearCommand(ctx))

	return perfCmd
}

func newPerfListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <piece>",
		Short: "List the performances of a piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := ctx.openCollection()
			if err != nil {
				return err
			}
			p, err := col.Piece(args[0])
			if err != nil {
				return err
			}
			performances := p.Performances()
			if len(performances) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Piece %s has no performances.\n", p.Name)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Performance", "Directory"},
				namePathRows(performances),
				nil,
			))
			return nil
		},
	}
}

func newPerfAddCommand(ctx *commandContext) *cobra.Command {
	var audioFile string
	var midiFile string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "add <piece> <name>",
		Short: "Add a performance from an audio file and an optional MIDI file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedCollection(func(col *collection.Collection) error {
				p, err := col.Piece(args[0])
				if err != nil {
					return err
				}
				applyOverwritePause(ctx, p)
				if err := p.AddPerformance(cmd.Context(), args[1], audioFile, midiFile, overwrite); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added performance %s to %s\n", args[1], p.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&audioFile, "audio", "", "Audio file to copy into the performance (required)")
	cmd.Flags().StringVar(&midiFile, "midi", "", "MIDI file to copy into the performance")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing performance with the same name")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

func newPerfRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <piece> <name>",
		Short: "Remove a performance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedCollection(func(col *collection.Collection) error {
				p, err := col.Piece(args[0])
				if err != nil {
					return err
				}
				if err := p.RemovePerformance(cmd.Context(), args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed performance %s from %s\n", args[1], p.Name)
				return nil
			})
		},
	}
}

func newPerfClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <piece>",
		Short: "Remove every performance of a piece",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLockedCollection(func(col *collection.Collection) error {
				p, err := col.Piece(args[0])
				if err != nil {
					return err
				}
				count := len(p.Performances())
				if err := p.ClearPerformances(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d performance(s) from %s\n", count, p.Name)
				return nil
			})
		},
	}
}
