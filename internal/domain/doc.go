// Package domain contains the Task entity, its status values and the rules
// for creating and partially updating it. It is independent of any storage
// or delivery mechanism.
package domain
