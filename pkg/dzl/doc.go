// Package dzl is an embeddable leveled logger.
//
// Callers emit messages at one of five built-in levels (trace, debug, info,
// warn, error) or under a custom label. A Logger filters them against its
// configured threshold, renders each as
//
//	<timestamp> <LABEL> <message>
//
// writes a decorated copy to the console (errors to stderr, everything else
// to stdout) and, when file logging is enabled, appends the plain line to
// the log file.
//
// # Usage
//
// Initialize once at startup, then log through the package-level functions:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	if err := dzl.Init(cfg); err != nil {
//	    return err
//	}
//	dzl.Info("server started")
//	dzl.Custom("AUDIT", "user created")
//
// Or hold a Logger explicitly:
//
//	logger := dzl.New(cfg, dzl.WithColorMode(dzl.ColorNever))
//	logger.Warn("disk almost full")
//
// # Filtering
//
// Built-in levels are ordered trace < debug < info < warn < error. An entry
// passes when its level is at least the threshold. Custom entries always
// pass, and a nil or custom threshold filters nothing.
//
// # Errors
//
// Logging calls never return errors: file failures are reported on the
// diagnostic logger (see WithDiagnostics) and the console output is kept.
// Init is the exception and reports every failure as an error marked
// [ErrInit]. Use errors.Is with [ErrIO], [ErrParse] and [ErrInit] to
// classify errors.
//
// # Limitations
//
// Messages are written verbatim; a message containing newlines produces a
// multi-line entry. The log file is rewritten in full on every append, and
// separate processes writing the same file can lose each other's entries.
package dzl
