// Package domain contains the core domain entities and value objects for satzgen.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (HTTP, file system, logging) and
// contains only pure data types and business rules.
//
// # Entities
//
//   - [VerbPair]: One input row, a German verb and its English translation
//   - [Batch]: A fixed-size contiguous group of verb pairs sent as one request
//   - [Entry]: The fully validated, normalized output for one verb
//   - [BatchResult]: Terminal outcome of processing one batch
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Fully populated: no optional fields survive validation
package domain
