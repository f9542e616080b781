// Package testutils provides testing utilities for the task API.
//
// It contains an in-memory slog handler for asserting on log output and
// helpers for executing JSON requests against an http.Handler:
//
//	handler := testutils.NewTestSlogHandler()
//	log := slog.New(handler)
//
//	rr := testutils.ExecuteJSONRequest(t, router, http.MethodPost, "/api/tasks",
//	    map[string]any{"title": "Write report"})
//	body := testutils.DecodeJSONBody(t, rr)
package testutils
