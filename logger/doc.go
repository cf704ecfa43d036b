// Package logger provides structured logging for captionkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component- or session-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("caption").ForSession(sessionID, userID)
//	log.Info("session started", logger.Fields("language", "en-US"))
package logger
