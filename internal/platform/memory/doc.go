// Package memory provides process-memory implementations of the storage
// interfaces defined in the internal/store package. State lives only as long
// as the process; there is no persistence across restarts.
package memory
