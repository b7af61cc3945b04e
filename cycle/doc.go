// Package cycle finds and exploits periodicity in deterministic processes.
//
// Detect records states until a key repeats and reports the cycle start and
// length; Cycle.Project folds a far-away step count (a billion spin cycles,
// say) back onto the recorded prefix. Run combines the two.
//
// Hash gives non-comparable states a comparable key via deephash, and LCM
// aligns several independent periods.
package cycle
