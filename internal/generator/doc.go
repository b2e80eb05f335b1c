// Package generator assembles passwords from a charset and a uniform index sampler.
// It owns the batch semantics: validation happens before any entropy is read, and
// every password gets its own freshly seeded stream unless the caller asks for one
// shared stream per batch.
//
// Nothing here logs or prints. Every failure is returned and can be told apart
// with errors.Is.
package generator
