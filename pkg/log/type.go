package log

import "go.uber.org/zap"

// ZapConfig selects the level, mode, and encoding of the service logger.
// Values map onto the Level*, Mode*, and Encoding* constants.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// zapLogger is the Logger implementation backed by a zap sugared logger.
type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         *ZapConfig
}
