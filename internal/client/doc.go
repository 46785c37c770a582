// Package client implements the typed API layer of the Sahyog platform:
// one function per backend endpoint, grouped by resource area.
//
// Every function is a thin mapping from typed arguments to a typed
// result. Required identifiers are validated non-empty before any network
// I/O; failures are normalized into the model error taxonomy and
// propagated once, with no retries, caching, or deduplication inside this
// package. The authenticated request path reads the bearer token from the
// injected session store immediately before each call, so a logout that
// lands between a caller's decision and the dispatch is honored.
package client
