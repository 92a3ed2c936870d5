package mongo

import "time"

// Config holds the connection settings for the mongo store backend.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // mongodb://localhost:27017
	Database        string        `env:"MONGODB_DATABASE" envDefault:"mailblocks"`     // database holding the kv collection
	Collection      string        `env:"MONGODB_COLLECTION" envDefault:"kv"`           // one document per store key
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"10"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"0"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"2s"`
}
