package client

import (
	"context"
	"github.com/ValentinKolb/ooKV/rpc/common"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var (
	Logger = logger.GetLogger("ookv/client")
)

// NewRedisClient creates a client for the configured store, installs the
// given metrics hook (may be nil) and checks the connection with a PING.
// The caller owns the returned client and must close it.
func NewRedisClient(ctx context.Context, config common.ClientConfig, hook *MetricsHook) (*redis.Client, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid client configuration")
	}

	c := redis.NewClient(Options(config))
	if hook != nil {
		c.AddHook(hook)
	}

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, errors.Wrapf(err, "cannot connect to %s", config.Endpoint)
	}

	Logger.Infof("connected to %s (db %d)", config.Endpoint, config.DB)
	return c, nil
}

// Options converts the client configuration into go-redis options
func Options(config common.ClientConfig) *redis.Options {
	// go-redis treats 0 as "use the default", -1 disables retries
	retries := config.RetryCount
	if retries == 0 {
		retries = -1
	}

	return &redis.Options{
		Addr:         config.Endpoint,
		Username:     config.Username,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  config.Timeout(),
		ReadTimeout:  config.Timeout(),
		WriteTimeout: config.Timeout(),
		PoolSize:     config.PoolSize,
		MaxRetries:   retries,
	}
}
