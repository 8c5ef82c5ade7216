// Package translation wraps a pretrained multilingual translation model.
// The model is resolved and initialized once per process; load failures
// are memoized and every later call degrades to a fixed failure message
// instead of returning an error. Inference runs behind a circuit breaker,
// an optional rate limiter and an in-memory result cache.
package translation
