// Package ciutil detects whether the process runs under a CI provider and
// collects identifying information about the run.
//
// Every function takes a Getenv so that callers can pass os.Getenv in
// production and a fixed map in tests.
package ciutil
