// Package typed is the typed multiple-dispatch engine: it turns a table of
// per-signature implementations into one callable that routes each call by
// the runtime tags of all of its arguments.
//
// Build once, call many:
//
//	b := typed.New()                        // default classifier + conversions
//	eq, err := b.Build("equalScalar", typed.NewTable().
//		Add("boolean, boolean", eqBool).
//		Add("number, number", eqNumber))
//	res, err := eq.Call(true, 1.0)          // boolean→number, then eqNumber
//
// Routing (per call):
//
//  1. Classify every argument with the Builder's Classifier.
//  2. Exact signature match ⇒ invoke directly, no conversion.
//  3. Otherwise consider every signature of the same arity, in declaration
//     order; keep those where each argument tag reaches the declared tag
//     through the ConversionTable; pick the minimum total route cost. Ties go
//     to the first-declared signature.
//  4. Nothing reachable ⇒ *NoMatchError (errors.Is ErrNoMatchingSignature).
//  5. Apply each argument's route, invoke the implementation with the
//     converted values and return its result or error unchanged.
//
// Routing decisions are memoised per packed argument signature. The table is
// read-only after Build, so a Function is safe for concurrent use.
package typed
