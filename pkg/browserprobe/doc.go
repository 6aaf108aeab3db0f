// Package browserprobe reads signals from a live Chrome over the DevTools
// protocol using go-rod.
//
// A Browser owns one Chrome process (or a connection to a remote one) and a
// loopback HTTP server hosting a blank probe page and the worker bootstrap
// script. Each Page it opens implements lies.Client, so a live tab goes
// through exactly the same engine as a submitted snapshot:
//
//	b, err := browserprobe.Launch(ctx, cfg, browserprobe.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer b.Close()
//
//	verdict, err := b.Inspect(ctx, runner, "")
//
// Pages are opened through go-rod/stealth unless Config.Stealth is off.
// JavaScript exceptions come back as *errcapture.NamedError carrying the
// thrown class name.
package browserprobe
