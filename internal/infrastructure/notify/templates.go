package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/marsnewbie/kiwipure-cleaning/internal/domain/entities"
)

const (
	subjectQuoteFmt   = "New quote request from %s"
	subjectContactFmt = "New contact message from %s"
)

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

var quoteTmpl = template.Must(template.New("quote").Funcs(funcs).Parse(`A new quote request was submitted.

Reference: {{.ID}}
Client: {{.Input.ClientName}} <{{.Input.ClientEmail}}>
{{- if .Input.ClientPhone}}
Phone: {{.Input.ClientPhone}}{{end}}
{{- if .Input.CompanyName}}
Company: {{.Input.CompanyName}}{{end}}
{{- if .Input.Location}}
Location: {{.Input.Location}}{{end}}
Service: {{.Input.ServiceType}}
Premises: {{.Input.PremisesType.Label}}
Area: {{.Input.AreaSize}} m2
Frequency: {{.Input.Frequency.Label}}
Fixtures: {{.Input.RestroomCount}} restrooms, {{.Input.KitchenetteCount}} kitchenettes, {{.Input.BinCount}} bins
{{- if .Input.SpecialRequirements}}
Special requirements: {{.Input.SpecialRequirements}}{{end}}
{{- if .Input.PreferredTimeWindow}}
Preferred time: {{.Input.PreferredTimeWindow}}{{end}}

Pricing: {{.PricingVariant}}
Estimated price: {{money .EstimatedPrice}}
{{- if .Estimate.HoursPerVisit}}
Hours per visit: {{.Estimate.HoursPerVisit}}
Per visit: {{money .Estimate.PricePerVisitExTax}} + GST = {{money .Estimate.PricePerVisitInclTax}}
Monthly: {{money .Estimate.MonthlyPriceExTax}} + GST = {{money .Estimate.MonthlyPriceInclTax}}{{end}}
`))

var contactTmpl = template.Must(template.New("contact").Parse(`A new message arrived through the contact form.

Reference: {{.ID}}
From: {{.Name}} <{{.Email}}>
{{- if .Phone}}
Phone: {{.Phone}}{{end}}

{{.Message}}
`))

func renderQuote(q entities.Quote) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := quoteTmpl.Execute(&buf, q); err != nil {
		return "", "", err
	}
	return fmt.Sprintf(subjectQuoteFmt, q.Input.ClientName), buf.String(), nil
}

func renderContact(m entities.ContactMessage) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, m); err != nil {
		return "", "", err
	}
	return fmt.Sprintf(subjectContactFmt, m.Name), buf.String(), nil
}
