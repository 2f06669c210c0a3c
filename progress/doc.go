// Package progress defines the collaborator through which long-running
// transforms report coarse status and progress.
//
// A Sink receives two kinds of notification, synchronously and in order:
//
//   - StatusChanged(status): a phase starts ("Initialization", "Forward scan", ...).
//   - ProgressChanged(step, total): step of total outer-scan units are done.
//
// Implementations:
//
//   - Nop discards everything; it is the default.
//   - Recorder keeps every event, for tests and post-mortem inspection.
//   - Logger forwards events to a zerolog.Logger.
//
// Sinks are passed explicitly to each transform; there is no global
// listener registry.
package progress
