package reports

import "errors"

var (
	ErrNotFound      = errors.New("report not found")
	ErrInvalidReport = errors.New("report has no id or hash")
	ErrEncode        = errors.New("failed to encode report")
	ErrDecode        = errors.New("failed to decode report")

	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")

	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")

	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
)
