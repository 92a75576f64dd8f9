package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds the connection settings for the rate-limit store.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type redisImpl struct {
	client *goredis.Client
}
