// Package interval provides half-open integer ranges and the split/shift
// arithmetic used to push whole ranges of seeds or part ratings through
// piecewise rules without enumerating their members.
//
// Every operation that cuts a range returns pieces that partition it: their
// lengths sum to the original length and they do not overlap.
package interval
