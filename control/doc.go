// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime tunables and telemetry for the reactor/interpreter core.
//
// Provides:
//   - Typed configuration snapshot seeded from the original mln_lang
//     constants (no reload hooks; it is a plain struct)
//   - Dispatch-loop and interpreter-step metrics counters
package control
