package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Store       StoreConfig       `mapstructure:"store" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Geo         GeoConfig         `mapstructure:"geo" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"required,min=1"`      // POST /logs upload limit
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration. Ingestion reports live under RootDir.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// StoreConfig holds the log entry store configuration.
type StoreConfig struct {
	Path      string `mapstructure:"path" validate:"required"`             // sqlite database file
	BatchSize int    `mapstructure:"batch_size" validate:"required,min=1"` // entries per committed batch
}

// IngestionConfig holds bulk-load configuration.
type IngestionConfig struct {
	ParseWorkers int `mapstructure:"parse_workers" validate:"required,min=1,max=256"`
	MaxLineBytes int `mapstructure:"max_line_bytes" validate:"required,min=1024"`
}

// GeoConfig holds the geo resolver configuration. An empty DatabasePath disables country lookups.
type GeoConfig struct {
	DatabasePath    string `mapstructure:"database_path"`
	LookupTimeoutMs int    `mapstructure:"lookup_timeout_ms" validate:"required,min=1"`
	LookupWorkers   int    `mapstructure:"lookup_workers" validate:"required,min=1,max=256"`
}
