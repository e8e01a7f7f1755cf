// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the pipeline needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Completer]: Performs one chat-completion round trip
//   - [CacheStore]: Persists and loads per-batch results for resumption
//   - [ResultSink]: Accumulates validated entries and persists them incrementally
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/openrouter, internal/cache, internal/sink)
// implement them, which keeps the pipeline testable with stubs.
package ports
