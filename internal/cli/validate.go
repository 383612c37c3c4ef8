package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a quote form and print every problem in form order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			edits, err := formEdits(cmd)
			if err != nil {
				return err
			}
			var in entities.QuoteInput
			for _, e := range edits {
				if err := in.Set(e.Field, e.Value); err != nil {
					return err
				}
			}

			msgs := validation.Messages(validation.New().Quote(in))
			if len(msgs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			for _, m := range msgs {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return fmt.Errorf("%d validation problem(s)", len(msgs))
		},
	}
	addFormFlags(cmd)
	return cmd
}
