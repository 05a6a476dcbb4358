package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quire/internal/piece"
)

func newAuthorityCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "authority <piece> <format>",
		Short: "Check that a piece can use the given format as its authority encoding",
		Long: "Check that a piece can use the given format as its authority encoding.\n" +
			"The format must be one of mxml, ly, midi, or mei, and the piece must carry\n" +
			"an encoding file of that kind. Set pieces.default_authority in the\n" +
			"configuration to make a format the default for every command.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := piece.ParseFormat(args[1])
			if err != nil {
				return err
			}
			col, err := ctx.openCollection()
			if err != nil {
				return err
			}
			p, err := col.Piece(args[0])
			if err != nil {
				return err
			}
			if err := p.SetAuthority(format); err != nil {
				return err
			}
			_, authority := p.Authority()
			fmt.Fprintf(cmd.OutOrStdout(), "%s can serve as authority for %s (%s)\n", format, p.Name, authority)
			return nil
		},
	}
}
