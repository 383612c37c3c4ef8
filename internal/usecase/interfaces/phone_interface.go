package interfaces

// IPhoneNormalizer rewrites a free-text phone number into a canonical form.
// It returns the trimmed input when the number cannot be parsed.
type IPhoneNormalizer interface {
	Normalize(raw string) string
}
