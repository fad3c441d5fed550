// Package log is the logging seam used by the escscan inspector.
//
// Library code depends only on the Logger interface so that the report
// written to stdout never mixes with diagnostics. The CLI wires a zerolog
// console logger on stderr; tests use the no-op logger.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("scan complete", log.Int("matches", 3))
package log
