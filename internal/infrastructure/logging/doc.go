// Package logging builds the process-wide zap logger.
//
// Production mode writes JSON for log shippers; development mode writes
// colored console lines. Components receive a named *zap.Logger from
// Logger.Component and log with typed fields:
//
//	log := logging.NewDefault()
//	windows := log.Component("window")
//	windows.Info("window opened", zap.String("instance_id", id))
package logging
