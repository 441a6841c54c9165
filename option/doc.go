// Package option models a single named, bounded, validator-constrained numeric
// parameter and answers whether a candidate value satisfies it.
//
// An Option layers four kinds of constraints:
//
//   - Domain:      the candidate must not be NaN.
//   - Cross-field: options named "xMin"/"xMax" must stay below/above their
//     paired option, resolved through an optional owner Lookup.
//   - Catalog:     every attached Validator predicate must hold.
//   - Range:       Min ≤ v ≤ Max, where a NaN bound disables that side and
//     Min ≥ Max (both non-NaN) makes every value invalid.
//
// Validity is reported as data: IsValid and MatchesValidators return booleans
// and never panic. Configuration errors that can be detected up front (empty
// names, validator ids outside the catalog) are rejected by New and by JSON
// decoding with sentinel errors.
//
// Two "no bound" encodings coexist on purpose: ±Inf is the default and is
// rendered as an open interval by Describe, while NaN is an override sentinel
// honoured only by IsValid.
//
// Usage:
//
//	rate, err := option.New("rate", 0.5, option.Config{
//		Min:        option.F(0),
//		Max:        option.F(1),
//		Validators: []option.Validator{option.Exclusive01},
//	}, nil)
//	if err != nil {
//		// handle ErrEmptyName / ErrUnknownValidator
//	}
//	rate.IsValid(0)     // false
//	rate.IsValid(0.999) // true
//	fmt.Println(rate)   // rate: { x ∈ (0, 1) }
package option
