package validation

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error lists every rule a submission broke, in rule order.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validator checks quote and contact submissions.
//
// Rules are struct tags on private views of the entities; field order in a view is
// the order messages are reported in.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return &Validator{v: v}
}

type quoteView struct {
	ClientName   string  `validate:"notblank"`
	ClientEmail  string  `validate:"notblank,simple_email"`
	ServiceType  string  `validate:"notblank"`
	BuildingType string  `validate:"notblank"`
	AreaSize     float64 `validate:"gt=0,finite"`
	Frequency    string  `validate:"notblank"`
	pointCounts
}

// pointCounts mirrors entities.MaxPointCount.
type pointCounts struct {
	RestroomCount    int `validate:"min=0,max=500"`
	KitchenetteCount int `validate:"min=0,max=500"`
	BinCount         int `validate:"min=0,max=500"`
}

var quoteMessages = map[string]string{
	"ClientName":               "Client name is required",
	"ClientEmail.notblank":     "Client email is required",
	"ClientEmail.simple_email": "Client email format is invalid",
	"ServiceType":              "Service type is required",
	"BuildingType":             "Building type is required",
	"AreaSize":                 "Area size must be greater than 0",
	"Frequency":                "Frequency is required",
	"RestroomCount":            "Restroom count must be a whole number from 0 to 500",
	"KitchenetteCount":         "Kitchenette count must be a whole number from 0 to 500",
	"BinCount":                 "Bin count must be a whole number from 0 to 500",
}

type contactView struct {
	Name    string `validate:"notblank"`
	Email   string `validate:"notblank,simple_email"`
	Message string `validate:"notblank"`
}

var contactMessages = map[string]string{
	"Name":               "Name is required",
	"Email.notblank":     "Email is required",
	"Email.simple_email": "Email format is invalid",
	"Message":            "Message is required",
}

// Quote returns nil or an *Error.
func (v *Validator) Quote(in entities.QuoteInput) error {
	return v.check(quoteView{
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		ServiceType:  in.ServiceType,
		BuildingType: string(in.PremisesType),
		AreaSize:     in.AreaSize,
		Frequency:    string(in.Frequency),
		pointCounts:  countsOf(in),
	}, quoteMessages)
}

// PointCounts checks only the restroom, kitchenette and bin counts. A live preview
// runs it so that an unusable count is reported instead of priced.
func (v *Validator) PointCounts(in entities.QuoteInput) error {
	return v.check(countsOf(in), quoteMessages)
}

func countsOf(in entities.QuoteInput) pointCounts {
	return pointCounts{
		RestroomCount:    in.RestroomCount,
		KitchenetteCount: in.KitchenetteCount,
		BinCount:         in.BinCount,
	}
}

// Contact returns nil or an *Error.
func (v *Validator) Contact(m entities.ContactMessage) error {
	return v.check(contactView{
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
	}, contactMessages)
}

func (v *Validator) check(view any, messages map[string]string) error {
	err := v.v.Struct(view)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &Error{Messages: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.StructField()]
		}
		if !ok {
			msg = fe.Error()
		}
		out.Messages = append(out.Messages, msg)
	}
	return out
}

// Messages extracts the ordered list from err, or nil when err is not a validation error.
func Messages(err error) []string {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
