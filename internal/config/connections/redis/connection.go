package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type ConnectionInfo struct {
	Addr     string
	Password string
	DB       int
}

type Redis struct {
	Client *redis.Client
}

func NewConnection(ctx context.Context, info ConnectionInfo) (*Redis, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     info.Addr,
		Password: info.Password,
		DB:       info.DB,
	})

	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{Client: cli}, nil
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
