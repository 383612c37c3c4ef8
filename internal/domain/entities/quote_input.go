package entities

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownField      = errors.New("unknown input field")
	ErrInvalidFieldValue = errors.New("invalid input field value")
)

// MaxPointCount caps restroom, kitchenette and bin counts.
const MaxPointCount = 500

// InvalidPointCount is stored for a count that could not be accepted, so that
// validation reports it instead of the engine pricing it as zero.
const InvalidPointCount = -1

// PointCount converts a submitted number into a count. ok is false for fractions,
// negatives, non-finite values and anything above MaxPointCount.
func PointCount(f float64) (n int, ok bool) {
	if math.IsNaN(f) || f < 0 || f > MaxPointCount || f != math.Trunc(f) {
		return InvalidPointCount, false
	}
	return int(f), true
}

// Field names one editable attribute of QuoteInput.
type Field string

const (
	FieldClientName          Field = "client_name"
	FieldClientEmail         Field = "client_email"
	FieldClientPhone         Field = "client_phone"
	FieldCompanyName         Field = "company_name"
	FieldLocation            Field = "location"
	FieldServiceType         Field = "service_type"
	FieldPremisesType        Field = "building_type"
	FieldAreaSize            Field = "area_size"
	FieldFrequency           Field = "frequency"
	FieldRestroomCount       Field = "restroom_count"
	FieldKitchenetteCount    Field = "kitchenette_count"
	FieldBinCount            Field = "bin_count"
	FieldSpecialRequirements Field = "special_requirements"
	FieldPreferredTimeWindow Field = "preferred_time_window"

	FieldScopeDesks       Field = "scope_desks"
	FieldScopeVacuum      Field = "scope_vacuum"
	FieldScopeMop         Field = "scope_mop"
	FieldScopeDusting     Field = "scope_dusting"
	FieldScopeRestrooms   Field = "scope_restrooms"
	FieldScopeKitchenette Field = "scope_kitchenette"
	FieldScopeTrash       Field = "scope_trash"
)

// Scope records which tasks the customer ticked. No engine prices it.
type Scope struct {
	Desks       bool `json:"desks"`
	Vacuum      bool `json:"vacuum"`
	Mop         bool `json:"mop"`
	Dusting     bool `json:"dusting"`
	Restrooms   bool `json:"restrooms"`
	Kitchenette bool `json:"kitchenette"`
	Trash       bool `json:"trash"`
}

// QuoteInput is the state of one quote form.
type QuoteInput struct {
	ClientName          string       `json:"client_name"`
	ClientEmail         string       `json:"client_email"`
	ClientPhone         string       `json:"client_phone,omitempty"`
	CompanyName         string       `json:"company_name,omitempty"`
	Location            string       `json:"location,omitempty"`
	ServiceType         string       `json:"service_type"`
	PremisesType        PremisesType `json:"building_type"`
	AreaSize            float64      `json:"area_size"`
	Frequency           Frequency    `json:"frequency"`
	RestroomCount       int          `json:"restroom_count,omitempty"`
	KitchenetteCount    int          `json:"kitchenette_count,omitempty"`
	BinCount            int          `json:"bin_count,omitempty"`
	Scope               Scope        `json:"scope"`
	SpecialRequirements string       `json:"special_requirements,omitempty"`
	PreferredTimeWindow string       `json:"preferred_time_window,omitempty"`
}

// Normalize trims free text and resolves enum aliases.
func (in QuoteInput) Normalize() QuoteInput {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientPhone = strings.TrimSpace(in.ClientPhone)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Location = strings.TrimSpace(in.Location)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	in.PremisesType = in.PremisesType.Canonical()
	in.Frequency = in.Frequency.Canonical()
	in.SpecialRequirements = strings.TrimSpace(in.SpecialRequirements)
	in.PreferredTimeWindow = strings.TrimSpace(in.PreferredTimeWindow)
	return in
}

// Set assigns one field from a loosely typed value, the way a form widget reports it.
// Numeric fields accept numbers or numeric strings; unparseable strings become zero.
func (in *QuoteInput) Set(f Field, v any) error {
	switch f {
	case FieldClientName:
		return setString(&in.ClientName, f, v)
	case FieldClientEmail:
		return setString(&in.ClientEmail, f, v)
	case FieldClientPhone:
		return setString(&in.ClientPhone, f, v)
	case FieldCompanyName:
		return setString(&in.CompanyName, f, v)
	case FieldLocation:
		return setString(&in.Location, f, v)
	case FieldServiceType:
		return setString(&in.ServiceType, f, v)
	case FieldSpecialRequirements:
		return setString(&in.SpecialRequirements, f, v)
	case FieldPreferredTimeWindow:
		return setString(&in.PreferredTimeWindow, f, v)
	case FieldPremisesType:
		var s string
		if err := setString(&s, f, v); err != nil {
			return err
		}
		in.PremisesType = ParsePremisesType(s)
	case FieldFrequency:
		var s string
		if err := setString(&s, f, v); err != nil {
			return err
		}
		in.Frequency = ParseFrequency(s)
	case FieldAreaSize:
		n, err := toFloat(f, v)
		if err != nil {
			return err
		}
		in.AreaSize = n
	case FieldRestroomCount:
		return setInt(&in.RestroomCount, f, v)
	case FieldKitchenetteCount:
		return setInt(&in.KitchenetteCount, f, v)
	case FieldBinCount:
		return setInt(&in.BinCount, f, v)
	case FieldScopeDesks:
		return setBool(&in.Scope.Desks, f, v)
	case FieldScopeVacuum:
		return setBool(&in.Scope.Vacuum, f, v)
	case FieldScopeMop:
		return setBool(&in.Scope.Mop, f, v)
	case FieldScopeDusting:
		return setBool(&in.Scope.Dusting, f, v)
	case FieldScopeRestrooms:
		return setBool(&in.Scope.Restrooms, f, v)
	case FieldScopeKitchenette:
		return setBool(&in.Scope.Kitchenette, f, v)
	case FieldScopeTrash:
		return setBool(&in.Scope.Trash, f, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}

func setString(dst *string, f Field, v any) error {
	switch s := v.(type) {
	case string:
		*dst = s
	case nil:
		*dst = ""
	default:
		return fmt.Errorf("%w: %s expects text, got %T", ErrInvalidFieldValue, f, v)
	}
	return nil
}

func toFloat(f Field, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case nil:
		return 0, nil
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, nil
		}
		return p, nil
	default:
		return 0, fmt.Errorf("%w: %s expects a number, got %T", ErrInvalidFieldValue, f, v)
	}
}

func setInt(dst *int, f Field, v any) error {
	n, err := toFloat(f, v)
	if err != nil {
		return err
	}
	c, ok := PointCount(n)
	if !ok {
		return fmt.Errorf("%w: %s must be a whole number from 0 to %d", ErrInvalidFieldValue, f, MaxPointCount)
	}
	*dst = c
	return nil
}

func setBool(dst *bool, f Field, v any) error {
	switch b := v.(type) {
	case bool:
		*dst = b
	case string:
		p, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return fmt.Errorf("%w: %s expects true/false", ErrInvalidFieldValue, f)
		}
		*dst = p
	default:
		return fmt.Errorf("%w: %s expects a bool, got %T", ErrInvalidFieldValue, f, v)
	}
	return nil
}

// Edit is a single field change coming from a form.
type Edit struct {
	Field Field
	Value any
}
