// Package diag defines the core diagnostic model shared by every pipeline
// stage: lexer, parser, internal/hir, internal/sema, and internal/mir.
//
// # Purpose
//
//   - Provide a deterministic data structure (Diagnostic) that captures a
//     finding produced by any stage, tied to a byte span (§3.1) rather than
//     anything formatting-specific.
//   - Offer light-weight emission helpers (Reporter, ReportBuilder, Bag) so
//     producers can report diagnostics without coupling to storage or
//     rendering.
//
// # Scope
//
// Package diag performs no formatting, I/O, or CLI integration of its own;
// rendering to a terminal lives in internal/diagfmt, which consumes a *Bag
// and a source.FileSet. diag is exactly the Emitter sink §6.2 describes as
// "consumed, not defined" by the core: the core only ever calls Report
// (directly or through a ReportBuilder) and never inspects how a
// diagnostic is displayed.
//
// # Data model
//
// Diagnostic is the central record (§6.2: "{level, message, code,
// annotations}"). It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – the stable Exxxx identifier from codes.go (§6.2).
//   - Message – human oriented text describing the problem.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – the annotations §6.2 asks for: secondary spans/messages
//     giving additional context (e.g. "parameter declared here"), or, for
//     E0509, one note per extra call argument (E0510 is instead reported
//     once per mismatched argument, with that argument's span as primary).
//
// Notes should be used sparingly: each note must add new context rather
// than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. A phase
// constructs a ReportBuilder via NewReportBuilder (or the helper functions
// ReportError/ReportWarning/ReportInfo), chains WithNote as needed, and
// calls Emit exactly once. When no notes are needed a phase may call
// Reporter.Report(...) directly, as the lexer and parser do.
//
// diag.BagReporter adapts a Reporter onto a *Bag, which supports sorting
// and a MaxDiagnostics cap (§7: "emits all diagnostics it can before
// halting"); diag.DedupReporter wraps another Reporter to suppress exact
// repeats, for stages (like the type checker) that might otherwise report
// the same mismatch from more than one call site.
//
// # Consumers
//
//   - internal/diagfmt renders a *Bag into human-readable text for the CLI.
//   - internal/pipeline wires a BagReporter to every stage and halts
//     lowering at a stage boundary once the Bag has recorded an error.
package diag
