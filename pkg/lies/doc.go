// Package lies cross-checks the signals a browser exposes and reports every
// contradiction as a lie.
//
// The primary user agent is authoritative: it yields the platform identity
// and the system every other signal is judged against. The engine then runs
// a fixed list of checks (platform string, touch on a Mac, resource counts on
// mobile, speech voices, worker user agent). A signal that is unavailable
// never disagrees; only an actively contradicting value does.
//
// Runner drives a full pass against a Client. It reads voices and walks the
// worker contexts concurrently, captures every failure in a fresh
// errcapture.Collector, and always returns a Verdict:
//
//	runner := lies.NewRunner(lies.NewEngine(cfg), workerscope.New(wcfg), lies.WithLogger(log))
//	v := runner.Run(ctx, &snapshot)
//	if !v.Passed {
//	    for _, d := range v.Disagreements {
//	        log.Info("lie", "reason", d.Reason)
//	    }
//	}
//
// Snapshot is a Client built from data a page submitted; the browserprobe
// package provides one backed by a live Chrome.
package lies
