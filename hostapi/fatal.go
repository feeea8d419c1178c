package hostapi

import "sync"

var (
	fatalMu   sync.Mutex
	fatalSink = func(text string) {}
)

// SetFatalErrorSink registers the host's exception callback. Every
// construction-time or convergence failure (spec.md §7 kinds 1, 2, 3) is
// reported through it in addition to the returned Status, mirroring
// spec.md §6's "single error callback FatalError(text)". A nil sink is
// replaced with a no-op.
func SetFatalErrorSink(fn func(text string)) {
	fatalMu.Lock()
	defer fatalMu.Unlock()
	if fn == nil {
		fn = func(string) {}
	}
	fatalSink = fn
}

// FatalError reports text to the currently registered sink. It is exported
// so a host binding can route internal library errors through the same
// channel as boundary-function failures.
func FatalError(text string) {
	fatalMu.Lock()
	sink := fatalSink
	fatalMu.Unlock()
	sink(text)
}
