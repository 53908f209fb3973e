package marketdata

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Output sizes accepted by the daily time series endpoint.
const (
	OutputSizeCompact = "compact"
	OutputSizeFull    = "full"
)

var (
	symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.]{1,10}$`)
	unsafeChars   = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")
	fieldCheck    = validator.New()
)

// ValidateSymbol checks a ticker symbol and returns it upper-cased.
func ValidateSymbol(raw string) (string, error) {
	if raw == "" {
		return "", &ValidationError{Field: "symbol", Message: "Symbol must be a non-empty string"}
	}

	if !symbolPattern.MatchString(raw) {
		return "", &ValidationError{
			Field:   "symbol",
			Message: "Invalid symbol format. Symbols should contain only letters, numbers, and dots (max 10 characters)",
		}
	}

	return strings.ToUpper(raw), nil
}

// ValidateKeywords checks search keywords: between 2 and 100 characters once
// surrounding whitespace is trimmed.
func ValidateKeywords(raw string) error {
	if raw == "" {
		return &ValidationError{Field: "keywords", Message: "Keywords must be a non-empty string"}
	}

	trimmed := strings.TrimSpace(raw)
	if fieldCheck.Var(trimmed, "min=2") != nil {
		return &ValidationError{Field: "keywords", Message: "Keywords must be at least 2 characters long"}
	}

	if fieldCheck.Var(trimmed, "max=100") != nil {
		return &ValidationError{Field: "keywords", Message: "Keywords must be at most 100 characters long"}
	}

	return nil
}

// ValidateOutputSize accepts an empty value or one of compact/full.
func ValidateOutputSize(raw string) error {
	if fieldCheck.Var(raw, "omitempty,oneof="+OutputSizeCompact+" "+OutputSizeFull) != nil {
		return &ValidationError{Field: "outputSize", Message: `Output size must be either "compact" or "full"`}
	}
	return nil
}

// SanitizeInput trims surrounding whitespace and strips < > " ' & from free text.
func SanitizeInput(raw string) string {
	return strings.TrimSpace(unsafeChars.Replace(raw))
}
