// Package race implements the domain layer for the finisher registry.
//
// This package contains only pure Go code plus golang.org/x/text for
// locale-aware case mapping. It has no knowledge of presentation concerns
// (forms, tables, terminals).
//
// # Core Types
//
// Participant is a registered finisher. Its bib is the immutable unique key;
// rank is the only field mutated after creation, reassigned by the Registry
// on every insert.
//
// Registry is the authoritative in-memory collection. It enforces bib
// uniqueness, keeps participants ordered by ascending finish time (stable on
// ties) and assigns contiguous 1-based ranks. Query answers inclusive
// time-window lookups without mutating state.
//
// DecodeClock and EncodeClock convert between HH:MM:SS text and total
// seconds. NameFormatter normalizes display names (title-case at the string
// start and after spaces and hyphens) using the rules of a configured locale.
package race
