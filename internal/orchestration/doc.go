// Package orchestration runs the summation strategies one after another over
// the same cost collection, times each one, hands the results to a reporter
// and checks that the totals agree.
package orchestration
