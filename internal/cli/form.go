package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

// formFlags maps command-line flags to quote form fields, in form order.
var formFlags = []struct {
	name  string
	field entities.Field
	usage string
}{
	{"name", entities.FieldClientName, "client name"},
	{"email", entities.FieldClientEmail, "client e-mail"},
	{"phone", entities.FieldClientPhone, "client phone"},
	{"company", entities.FieldCompanyName, "company name"},
	{"location", entities.FieldLocation, "site location"},
	{"service", entities.FieldServiceType, "service type"},
	{"premises", entities.FieldPremisesType, "premises type (office, retail, warehouse, medical, restaurant, other)"},
	{"area", entities.FieldAreaSize, "floor area in m2"},
	{"frequency", entities.FieldFrequency, "cleaning frequency (weekly, bi_weekly, monthly, one_time)"},
	{"restrooms", entities.FieldRestroomCount, "number of restrooms"},
	{"kitchenettes", entities.FieldKitchenetteCount, "number of kitchenettes"},
	{"bins", entities.FieldBinCount, "number of bins"},
	{"special", entities.FieldSpecialRequirements, "special requirements"},
	{"time-window", entities.FieldPreferredTimeWindow, "preferred time window"},
}

var scopeFields = map[string]entities.Field{
	"desks":       entities.FieldScopeDesks,
	"vacuum":      entities.FieldScopeVacuum,
	"mop":         entities.FieldScopeMop,
	"dusting":     entities.FieldScopeDusting,
	"restrooms":   entities.FieldScopeRestrooms,
	"kitchenette": entities.FieldScopeKitchenette,
	"trash":       entities.FieldScopeTrash,
}

func addFormFlags(cmd *cobra.Command) {
	for _, f := range formFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().StringSlice("scope", nil, "ticked tasks: desks, vacuum, mop, dusting, restrooms, kitchenette, trash")
}

// formEdits returns one edit per flag the user set, as a form would report them.
func formEdits(cmd *cobra.Command) ([]entities.Edit, error) {
	var edits []entities.Edit
	for _, f := range formFlags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		v, err := cmd.Flags().GetString(f.name)
		if err != nil {
			return nil, err
		}
		edits = append(edits, entities.Edit{Field: f.field, Value: v})
	}

	scope, err := cmd.Flags().GetStringSlice("scope")
	if err != nil {
		return nil, err
	}
	for _, s := range scope {
		field, ok := scopeFields[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			return nil, &unknownScopeError{name: s}
		}
		edits = append(edits, entities.Edit{Field: field, Value: true})
	}
	return edits, nil
}

type unknownScopeError struct{ name string }

func (e *unknownScopeError) Error() string { return "unknown scope task " + e.name }
