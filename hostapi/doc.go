// Package hostapi is the C-style boundary a scripting host binds against:
// flat numeric arguments in, a status code and (for vector results) a
// pre-allocated output slice out. It is the only place in this module that
// collapses every internal error into the single FatalError callback named
// in spec.md §6/§7 — every other package returns ordinary Go errors.
package hostapi
