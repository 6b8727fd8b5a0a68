package redis

import (
	"sommelier-srv/internal/preference/repository"
	"sommelier-srv/pkg/log"
	pkgRedis "sommelier-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
