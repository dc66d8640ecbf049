package types

import "errors"

// Sentinel errors for the type registry.
var (
	// ErrUnknownTag indicates a type name that is not part of the closed tag set.
	ErrUnknownTag = errors.New("types: unknown type tag")

	// ErrBadSignature indicates malformed signature text (empty entry, stray comma).
	ErrBadSignature = errors.New("types: malformed signature")

	// ErrSignatureTooLong indicates a signature with more than MaxArity positions.
	ErrSignatureTooLong = errors.New("types: signature exceeds max arity")

	// ErrBadConversion indicates an invalid conversion edge (self edge,
	// Unknown endpoint, non-positive cost or nil function).
	ErrBadConversion = errors.New("types: invalid conversion edge")

	// ErrDuplicateConversion indicates a second edge for the same (from, to) pair.
	ErrDuplicateConversion = errors.New("types: duplicate conversion edge")

	// ErrConversionFailed indicates a conversion function rejected its input.
	ErrConversionFailed = errors.New("types: conversion failed")

	// ErrTableFrozen indicates an Add after routes were already computed.
	ErrTableFrozen = errors.New("types: conversion table is frozen")
)
