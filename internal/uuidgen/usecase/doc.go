// Package usecase is the adapter-side policy over the UUID core: batch
// generation with bounded retries on entropy failures, inspection, comparison
// and a concurrent self test. The core itself never retries; this package is
// where that decision lives for the HTTP service and the CLI.
package usecase
