// Package config holds the process-wide numeric configuration consumed by
// tolerance-aware operations.
//
// A Config is a plain value. The surrounding application owns it: it builds
// one with Default/New (functional options) or loads one from YAML/JSON,
// then publishes it through a Store. Operations only ever read the Store,
// once per call, so an application-side Set is observed by the next call
// and never mutates a value an in-flight call is using.
//
// Fields:
//
//	Epsilon  relative tolerance for number/BigNumber comparison (>= 0, finite)
//	Number   default numeric type for constructors: number | BigNumber | Fraction
//
// Errors:
//
//	ErrBadEpsilon    - epsilon negative, NaN or ±Inf.
//	ErrBadNumberType - Number outside the supported set.
//	ErrDecode        - YAML/JSON payload could not be decoded.
package config
