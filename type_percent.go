package folio

// Percent is a value expressed in percent: 12.5 means 12.5%.
type Percent float64

// String prints the percentage with two decimals, rounded half away from
// zero like money amounts.
func (p Percent) String() string {
	return newDecimal(float64(p)).StringFixed(2) + "%"
}

// SignedString prints the percentage with an explicit sign. A value that
// rounds to zero prints as "-".
func (p Percent) SignedString() string {
	d := newDecimal(float64(p)).Round(2)
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + d.StringFixed(2) + "%"
	default:
		return d.StringFixed(2) + "%"
	}
}
