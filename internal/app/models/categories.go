package models

// The categorical vocabularies below mirror the values the regression
// model was trained on. They are stored as-is; translation to the
// model's column layout happens in FeatureVector.Row.

// Gender represents a student's gender
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Valid reports whether the gender carries a supported value
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Location represents a student's home location
type Location string

const (
	LocationRural Location = "Rural"
	LocationUrban Location = "Urban"
)

// Valid reports whether the location carries a supported value
func (l Location) Valid() bool {
	return l == LocationRural || l == LocationUrban
}

// SchoolType distinguishes public and private schools
type SchoolType string

const (
	SchoolTypePublic  SchoolType = "Public"
	SchoolTypePrivate SchoolType = "Private"
)

// Valid reports whether the school type carries a supported value
func (t SchoolType) Valid() bool {
	return t == SchoolTypePublic || t == SchoolTypePrivate
}

// IncomeCategory is the bucketed form of a household income figure.
// Raw figures are never stored; see the category package for the
// bucketing thresholds.
type IncomeCategory string

const (
	IncomeLow     IncomeCategory = "Low"
	IncomeAverage IncomeCategory = "Average"
	IncomeHigh    IncomeCategory = "High"
)

// Valid reports whether the income category carries a supported value
func (c IncomeCategory) Valid() bool {
	return c == IncomeLow || c == IncomeAverage || c == IncomeHigh
}

// Ordinal returns the encoding the model training pipeline applied to
// household income: Low=1, Average=2, High=3.
func (c IncomeCategory) Ordinal() int {
	switch c {
	case IncomeLow:
		return 1
	case IncomeAverage:
		return 2
	case IncomeHigh:
		return 3
	default:
		return 0
	}
}

// RatioCategory is the derived form of a teacher/student ratio figure.
// Invalid is a legitimate stored value: it records that the raw ratio
// could not be parsed at registration time.
type RatioCategory string

const (
	RatioGood    RatioCategory = "Good"
	RatioBad     RatioCategory = "Bad"
	RatioInvalid RatioCategory = "Invalid"
)

// YesNo represents a binary student or school attribute
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Valid reports whether the value is Yes or No
func (y YesNo) Valid() bool {
	return y == Yes || y == No
}
