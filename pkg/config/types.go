package config

type Config struct {
	// Server settings
	Server ServerConfig `json:"server"`

	// Database settings
	Database DatabaseConfig `json:"database"`

	// Logging settings
	Logging LoggingConfig `json:"logging"`
}

type ServerConfig struct {
	Host         string   `json:"host" default:"localhost"`
	Port         int      `json:"port" default:"8080"`
	ReadTimeout  int      `json:"read_timeout" default:"30"`  // seconds
	WriteTimeout int      `json:"write_timeout" default:"30"` // seconds
	IdleTimeout  int      `json:"idle_timeout" default:"120"` // seconds
	GracefulStop int      `json:"graceful_stop" default:"30"` // seconds
	CORSOrigins  []string `json:"cors_origins"`
}

type DatabaseConfig struct {
	Driver   string `json:"driver" default:"sqlite"` // sqlite, postgres
	Host     string `json:"host" default:"localhost"`
	Port     int    `json:"port" default:"5432"`
	Database string `json:"database" default:"tripfolio.db"`
	Username string `json:"username"`
	Password string `json:"password"`
	SSLMode  string `json:"ssl_mode" default:"disable"`

	// Connection pool settings
	MaxOpenConns    int `json:"max_open_conns" default:"25"`
	MaxIdleConns    int `json:"max_idle_conns" default:"5"`
	ConnMaxLifetime int `json:"conn_max_lifetime" default:"300"` // seconds
}

type LoggingConfig struct {
	Level      string `json:"level" default:"info"`    // debug, info, warn, error
	Format     string `json:"format" default:"json"`   // json, text
	Output     string `json:"output" default:"stdout"` // stdout, file
	FilePath   string `json:"file_path" default:"logs/tripfolio.log"`
	MaxSize    int    `json:"max_size" default:"100"` // MB
	MaxBackups int    `json:"max_backups" default:"3"`
	MaxAge     int    `json:"max_age" default:"28"` // days
	Compress   bool   `json:"compress" default:"true"`
}
