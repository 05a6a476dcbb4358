package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"quire/internal/piece"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var authorityFlag string

	cmd := &cobra.Command{
		Use:   "show <piece>",
		Short: "Display a piece's encodings, performances, and scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := ctx.openCollection()
			if err != nil {
				return err
			}

			var p *piece.Piece
			if authorityFlag != "" {
				format, err := piece.ParseFormat(authorityFlag)
				if err != nil {
					return err
				}
				p, err = col.PieceWithAuthority(args[0], format)
				if err != nil {
					return err
				}
			} else {
				p, err = col.Piece(args[0])
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			format, authority := p.Authority()
			fmt.Fprintf(out, "Piece:     %s\n", p.Name)
			fmt.Fprintf(out, "Folder:    %s\n", p.Folder)
			fmt.Fprintf(out, "Authority: %s (%s)\n\n", format, authority)

			encodings := p.Encodings()
			rows := make([][]string, 0, len(encodings))
			for _, f := range piece.Formats() {
				if path, ok := encodings[f]; ok {
					rows = append(rows, []string{string(f), path})
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Encoding", "File"}, rows, nil))

			fmt.Fprintln(out, renderTable([]string{"Performance", "Directory"}, namePathRows(p.Performances()), nil))
			fmt.Fprintln(out, renderTable([]string{"Score", "Directory"}, namePathRows(p.Scores()), nil))

			if len(p.Metadata) > 0 {
				fmt.Fprintln(out, "Metadata:")
				for _, doc := range p.Metadata {
					keys := make([]string, 0, len(doc))
					for key := range doc {
						keys = append(keys, key)
					}
					sort.Strings(keys)
					for _, key := range keys {
						fmt.Fprintf(out, "  %s: %v\n", key, doc[key])
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&authorityFlag, "authority", "", "Open the piece with this authority format instead of the configured default")
	return cmd
}

func namePathRows(index map[string]string) [][]string {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, index[name]})
	}
	return rows
}
