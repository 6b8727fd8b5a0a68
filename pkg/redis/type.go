package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr      string
	Username  string
	Password  string
	DB        int
	TLS       bool
	KeyPrefix string
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client    *goredis.Client
	keyPrefix string
}
