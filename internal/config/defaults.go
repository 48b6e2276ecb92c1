package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/adesua/data/analytics.db"
	}
	if cfg.Catalogs.Directory == "" {
		cfg.Catalogs.Directory = "/usr/local/etc/adesua/catalogs"
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 20
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Search.HistorySize == 0 {
		cfg.Search.HistorySize = 10
	}
	if cfg.Search.SessionLimit == 0 {
		cfg.Search.SessionLimit = 20
	}
	if cfg.Search.IntentThreshold == 0 {
		cfg.Search.IntentThreshold = 0.30
	}
	cfg.Search.Ranking.ApplyDefaults()
}
