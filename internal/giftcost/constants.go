package giftcost

const (
	// Threshold is the exclusive upper bound on the cost of a gift that is
	// included in the total.
	Threshold = 25

	// TaxMultiplier converts a pre-tax cost into the price paid.
	TaxMultiplier = 1.08

	// DefaultInputFile is the file read when no input path is configured.
	DefaultInputFile = "gift_costs.txt"
)

// Costs is the ordered collection of gift costs, one per input line.
// It is built once by the loader and only read afterwards.
type Costs []int64

// CountBelowThreshold returns how many costs qualify for the total.
func (c Costs) CountBelowThreshold() int {
	n := 0
	for _, v := range c {
		if v < Threshold {
			n++
		}
	}
	return n
}
