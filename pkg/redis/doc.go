// Package redis connects to the Redis server that backs the "redis" store
// backend of mailblocks.
//
// Connect parses a redis:// URL, pings the server and retries until it
// answers or the attempts run out. Healthcheck returns a ping closure for
// startup checks.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := kvstore.NewRedisStore(client, cfg.KeyPrefix)
package redis
