// Package logger is a thin factory around log/slog: a single New constructor
// configured by functional options, so every service builds its logger the
// same way.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("orders"),
//	)
//	logger.SetAsDefault(log)
//
//	v := modelguard.New(reg, modelguard.WithLogger(log))
//
// Production services typically use WithProduction(service) for json output
// at info level; tests pass WithOutput with a buffer to capture records.
package logger
