// Package service provides application-level services for managing tasks.
// Services sit between the HTTP layer and the store: they apply domain
// validation and defaults, stamp timestamps, and publish lifecycle events.
package service
