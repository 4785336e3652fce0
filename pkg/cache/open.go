package cache

// Config selects and configures a backend.
type Config struct {
	Backend  string
	Dir      string
	RedisURL string
	// MaxEntries bounds the memory backend; zero means unbounded.
	MaxEntries int
}

// Open creates the configured backend wrapped with [Instrument].
func Open(cfg Config) (Cache, error) {
	if cfg.Backend == "" {
		cfg.Backend = BackendMemory
	}
	if err := ValidateBackend(cfg.Backend); err != nil {
		return nil, err
	}
	var (
		c   Cache
		err error
	)
	switch cfg.Backend {
	case BackendFile:
		c, err = NewFileCache(cfg.Dir)
	case BackendRedis:
		c, err = NewRedisCache(cfg.RedisURL)
	case BackendNone:
		c = NewNullCache()
	default:
		c = NewMemoryCache(cfg.MaxEntries)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(c), nil
}
