// Package kernel contains the shared value objects of the dispatch domain:
// geographic points, monetary amounts, and entity identifiers.
//
// All value objects are immutable and must be created through their
// constructor functions. The zero value of each type is invalid and fails
// Validate, which protects aggregates from being assembled out of
// half-initialized parts.
package kernel
