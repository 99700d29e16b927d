/*
Package log provides structured logging for Folio built on zerolog.

A single global logger is initialized once at startup via Init and consumed
through child loggers carrying a contextual field (component, entity or
request ID):

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})
	logger := log.WithComponent("store")
	logger.Warn().Str("key", key).Msg("stored bytes unparsable, using defaults")

Console output (the default) is human-readable for local serving; JSON output
is for running behind a collector.
*/
package log
