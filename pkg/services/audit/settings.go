package audit

// Settings holds the configurable thresholds and constants used by the rule
// evaluators.
type Settings struct {
	// MoneyTolerance is the absolute tolerance for monetary comparisons, in
	// currency minor units. A difference equal to the tolerance is a mismatch.
	MoneyTolerance float64

	// QuantityTolerance is the absolute tolerance for line-item quantity
	// comparisons.
	QuantityTolerance float64

	// PartNumberKeyMinLen is the minimum raw part-number length for it to be
	// used as the aggregation key.
	PartNumberKeyMinLen int

	// DescriptionKeyLen is the length of the description prefix used as the
	// aggregation key when the part number is unusable.
	DescriptionKeyLen int

	// FuzzyTokenMinLen is the minimum word length for a description token to
	// participate in fuzzy matching.
	FuzzyTokenMinLen int

	// ServiceNatureCode is the expense-nature code classifying a commitment
	// as a service expenditure.
	ServiceNatureCode string
}

// DefaultSettings returns the thresholds used in production audits.
func DefaultSettings() Settings {
	return Settings{
		MoneyTolerance:      0.05,
		QuantityTolerance:   0.01,
		PartNumberKeyMinLen: 2,
		DescriptionKeyLen:   30,
		FuzzyTokenMinLen:    3,
		ServiceNatureCode:   "339039",
	}
}
