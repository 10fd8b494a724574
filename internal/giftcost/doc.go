// Package giftcost loads a collection of integer gift costs and totals the
// tax-inclusive price of the gifts under a fixed threshold.
//
// Two strategies compute the same total. [Iterative] visits each cost and
// accumulates the taxed price of the ones that qualify. [Bulk] filters the
// whole slice first, reduces it to an exact integer sum and applies the tax
// once. The two agree to within floating-point rounding, not bit for bit.
package giftcost
