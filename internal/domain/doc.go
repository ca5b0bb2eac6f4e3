// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/board, domain/task,
// domain/workflow, domain/session). This root package holds the error kinds
// every layer reports, validation types, the failure signal emitted for
// rolled-back mutations, and the Action interface used to stage remote steps.
package domain
