// Package logger holds slog attribute constructors shared by the fieldkit
// packages, so validation failures are logged with consistent keys.
//
//	log.Debug("validation failed",
//	    logger.Kind("object"),
//	    logger.Group("failures", logger.Failure("email", "required", "Email is required")),
//	)
//
// Nil errors produce an empty slog.Attr, which slog handlers skip.
package logger
