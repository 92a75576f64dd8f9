package redis

import "time"

// DefaultConnectTimeout bounds the startup ping; the OTP rate limiter
// depends on redis being reachable, so a dead instance fails fast.
const DefaultConnectTimeout = 5 * time.Second
