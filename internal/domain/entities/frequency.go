package entities

import "strings"

type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiWeekly Frequency = "bi_weekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyOneTime  Frequency = "one_time"
)

var frequencyAliases = map[string]Frequency{
	"fortnightly": FrequencyBiWeekly,
	"biweekly":    FrequencyBiWeekly,
	"bi-weekly":   FrequencyBiWeekly,
	"one_off":     FrequencyOneTime,
	"one-off":     FrequencyOneTime,
	"oneoff":      FrequencyOneTime,
	"one-time":    FrequencyOneTime,
}

var frequencyLabels = map[Frequency]string{
	FrequencyWeekly:   "Weekly",
	FrequencyBiWeekly: "Bi-weekly",
	FrequencyMonthly:  "Monthly",
	FrequencyOneTime:  "One-time",
}

func ParseFrequency(raw string) Frequency {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if f, ok := frequencyAliases[s]; ok {
		return f
	}
	return Frequency(s)
}

func (f Frequency) Canonical() Frequency {
	return ParseFrequency(string(f))
}

func (f Frequency) IsKnown() bool {
	_, ok := frequencyLabels[f.Canonical()]
	return ok
}

// Label falls back to "Monthly" for unknown values.
func (f Frequency) Label() string {
	if l, ok := frequencyLabels[f.Canonical()]; ok {
		return l
	}
	return frequencyLabels[FrequencyMonthly]
}

func Frequencies() []Frequency {
	return []Frequency{FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyOneTime}
}
