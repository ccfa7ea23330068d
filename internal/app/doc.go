// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// TaskService is the action surface shared by the HTTP adapter and the CLI.
// It validates input, drives the task store, and keeps a display-ordered
// view that is recomputed on every store notification.
package app
