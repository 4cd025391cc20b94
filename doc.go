// Package pad is the composition root for the pad notepad vault.
//
// It connects the core business logic (domain layer) with the storage
// adapters (persistence layer) using the hexagonal architecture pattern.
//
// Philosophy:
//
// Pad treats a directory of plain-text notepads as a small transactional
// database. Records are Markdown files with YAML frontmatter, keyed by an
// auto-incrementing id that is never reused. The core is storage-agnostic;
// the default adapter writes to the local filesystem.
//
// Features:
//
//   - **Hexagonal architecture**: the domain is isolated from persistence details.
//   - **Atomic writes**: records land via temp-file + rename, never half-written.
//   - **Metadata index**: a JSON index mirrors names and timestamps for cheap lookups.
//   - **Change watching**: external edits surface as debounced events.
//   - **Staged transactions**: batch imports commit all-or-nothing.
//
// Usage:
//
//	svc, err := pad.New("~/pads",
//		pad.WithAutoInit(true),
//		pad.WithLogger(logger),
//	)
//
//	n, err := svc.Create(ctx, "Groceries", "milk, eggs")
package pad
