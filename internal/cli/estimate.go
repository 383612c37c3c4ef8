package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marsnewbie/kiwipure-cleaning/internal/adapter/http/dto/response"
	"github.com/marsnewbie/kiwipure-cleaning/internal/config"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/pricing"
	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/validation"
)

func estimateCmd(open submitterFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price a quote form and print the estimate as JSON",
		Example: "  quotectl estimate --variant area_rate --area 200 --frequency monthly\n" +
			"  quotectl estimate --variant labor_hours --area 200 --premises office --frequency weekly --restrooms 1 --kitchenettes 1 --bins 2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pricingFile, _ := cmd.Flags().GetString("pricing-file")
			variant, _ := cmd.Flags().GetString("variant")
			submit, _ := cmd.Flags().GetBool("submit")

			cfg, err := config.LoadPricing(pricingFile)
			if err != nil {
				return err
			}
			registry, err := pricing.NewRegistry(cfg, "")
			if err != nil {
				return err
			}
			engine, err := registry.Resolve(variant)
			if err != nil {
				return err
			}

			edits, err := formEdits(cmd)
			if err != nil {
				return err
			}
			session := pricing.NewSession(engine, validation.New())
			for _, e := range edits {
				if err := session.Apply(e); err != nil {
					return err
				}
			}

			if !submit {
				return writeJSON(cmd, response.FromEstimate(session.Estimate()))
			}

			sub, closer, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closer.Close()

			q, err := session.Submit(cmd.Context(), sub)
			if err != nil {
				if msgs := validation.Messages(err); len(msgs) > 0 {
					for _, m := range msgs {
						fmt.Fprintln(cmd.ErrOrStderr(), m)
					}
					return fmt.Errorf("quote not submitted")
				}
				return err
			}
			return writeJSON(cmd, response.FromQuoteCreated(q))
		},
	}
	cmd.Flags().String("variant", "", fmt.Sprintf("pricing variant (%s or %s)", entities.VariantAreaRate, entities.VariantLaborHours))
	cmd.Flags().Bool("submit", false, "validate and store the quote after pricing it")
	addFormFlags(cmd)
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
