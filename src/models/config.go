package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	Host      string           `yaml:"host"`
	Port      int              `yaml:"port"`
	LogLevel  string           `yaml:"log_level"`
	Storage   MStorageConfig   `yaml:"storage"`
	Network   MNetworkConfig   `yaml:"network"`
	Providers MProviderConfig  `yaml:"providers"`
	Dashboard MDashboardConfig `yaml:"dashboard"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	RecentLookupLimit  int    `yaml:"recent_lookup_limit"`
}

type MNetworkConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Proxies        []string `yaml:"proxies"`
	RequestTimeout int      `yaml:"timeout"`
	MaxRetries     int      `yaml:"retries"`
	UserAgent      string   `yaml:"user_agent"`
}

type MProviderConfig struct {
	QuoteURL string `yaml:"quote_url"`
	ChartURL string `yaml:"chart_url"`
}

// MDashboardConfig holds the sidebar defaults and the enumerated choices
// offered to the page.
type MDashboardConfig struct {
	DefaultSymbol   string   `yaml:"default_symbol"`
	DefaultPeriod   string   `yaml:"default_period"`
	DefaultInterval string   `yaml:"default_interval"`
	DefaultWindow   int      `yaml:"default_window"`
	DefaultStdDev   float64  `yaml:"default_std_dev"`
	Periods         []string `yaml:"periods"`
	Intervals       []string `yaml:"intervals"`
}
