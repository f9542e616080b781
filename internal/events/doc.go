// Package events provides types and interfaces for task lifecycle events.
//
// Services emit events without knowing which handlers will process them.
// The primary components are:
// - TaskEvent: a record of a task being created, updated or deleted
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
// - InMemoryEventEmitter: synchronous in-process dispatch to registered handlers
// - AuditLogHandler: writes every event to a structured logger
package events
