package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quire/internal/piece"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pieces in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := ctx.openCollection()
			if err != nil {
				return err
			}
			names, err := col.Pieces()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pieces in collection.")
				return nil
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, pieceRow(ctx, name))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Piece", "Encodings", "Authority", "Performances", "Scores"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}

// pieceRow summarizes one piece for the listing. Pieces that cannot be opened
// (no authority encoding, for instance) still get a row so the operator can
// see what is wrong.
func pieceRow(ctx *commandContext, name string) []string {
	col, err := ctx.openCollection()
	if err != nil {
		return []string{name, "", err.Error(), "", ""}
	}
	p, err := col.Piece(name)
	if err != nil {
		return []string{name, "", errorSummary(err), "", ""}
	}
	format, _ := p.Authority()
	return []string{
		name,
		encodingSummary(p.Encodings()),
		string(format),
		strconv.Itoa(len(p.Performances())),
		strconv.Itoa(len(p.Scores())),
	}
}

func encodingSummary(encodings map[piece.Format]string) string {
	names := make([]string, 0, len(encodings))
	for format := range encodings {
		names = append(names, string(format))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func errorSummary(err error) string {
	msg := err.Error()
	if idx := strings.IndexByte(msg, ':'); idx > 0 {
		return msg[:idx]
	}
	return msg
}
