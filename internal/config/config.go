package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kathiroli/travel-claim/internal/rates"
	"github.com/kathiroli/travel-claim/internal/report"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Organization OrganizationConfig `mapstructure:"organization"`
	Rates        RatesConfig        `mapstructure:"rates"`
	Report       ReportConfig       `mapstructure:"report"`
	Export       ExportConfig       `mapstructure:"export"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// OrganizationConfig holds the organization identity printed on reports
type OrganizationConfig struct {
	Name string `mapstructure:"name"`
}

// RatesConfig holds city classification and grade allowance tables
type RatesConfig struct {
	DefaultClass      string                        `mapstructure:"default_class"`
	BaselineAllowance float64                       `mapstructure:"baseline_allowance"`
	CityClass         map[string]string             `mapstructure:"city_class"`
	Allowance         map[string]map[string]float64 `mapstructure:"allowance"`
}

// ReportConfig holds row anchors for the report layout
type ReportConfig struct {
	StatementDataStart  int `mapstructure:"statement_data_start"`
	StatementDataEnd    int `mapstructure:"statement_data_end"`
	StatementTotalsRow  int `mapstructure:"statement_totals_row"`
	HotelDataStart      int `mapstructure:"hotel_data_start"`
	HotelPadEnd         int `mapstructure:"hotel_pad_end"`
	HotelTotalsRow      int `mapstructure:"hotel_totals_row"`
	ConveyanceDataStart int `mapstructure:"conveyance_data_start"`
	ConveyancePadEnd    int `mapstructure:"conveyance_pad_end"`
	ConveyanceTotalsRow int `mapstructure:"conveyance_totals_row"`
}

// ExportConfig holds workbook export configuration
type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Override with environment variables
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	// Database defaults
	viper.SetDefault("database.path", "data/travelclaim.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")

	// Organization defaults
	viper.SetDefault("organization.name", "XYZ")

	// Rates defaults
	viper.SetDefault("rates.default_class", rates.ClassB)
	viper.SetDefault("rates.baseline_allowance", rates.BaselineAllowance)
	viper.SetDefault("rates.city_class", rates.DefaultCityClasses())
	viper.SetDefault("rates.allowance", rates.DefaultAllowances())

	// Report layout defaults
	layout := report.DefaultLayout()
	viper.SetDefault("report.statement_data_start", layout.StatementDataStart)
	viper.SetDefault("report.statement_data_end", layout.StatementDataEnd)
	viper.SetDefault("report.statement_totals_row", layout.StatementTotalsRow)
	viper.SetDefault("report.hotel_data_start", layout.HotelDataStart)
	viper.SetDefault("report.hotel_pad_end", layout.HotelPadEnd)
	viper.SetDefault("report.hotel_totals_row", layout.HotelTotalsRow)
	viper.SetDefault("report.conveyance_data_start", layout.ConveyanceDataStart)
	viper.SetDefault("report.conveyance_pad_end", layout.ConveyancePadEnd)
	viper.SetDefault("report.conveyance_totals_row", layout.ConveyanceTotalsRow)

	// Export defaults
	viper.SetDefault("export.output_dir", "exports")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("organization.name", "ORGANIZATION_NAME")
	viper.BindEnv("export.output_dir", "EXPORT_OUTPUT_DIR")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Organization.Name == "" {
		return fmt.Errorf("organization.name is required")
	}

	if c.Rates.DefaultClass != rates.ClassA && c.Rates.DefaultClass != rates.ClassB {
		return fmt.Errorf("rates.default_class must be %q or %q", rates.ClassA, rates.ClassB)
	}
	if c.Rates.BaselineAllowance < 0 {
		return fmt.Errorf("rates.baseline_allowance must not be negative")
	}
	for city, class := range c.Rates.CityClass {
		if class != rates.ClassA && class != rates.ClassB {
			return fmt.Errorf("rates.city_class[%s]: unknown class %q", city, class)
		}
	}
	for grade, byClass := range c.Rates.Allowance {
		for class, rate := range byClass {
			if class != rates.ClassA && class != rates.ClassB {
				return fmt.Errorf("rates.allowance[%s]: unknown class %q", grade, class)
			}
			if rate < 0 {
				return fmt.Errorf("rates.allowance[%s][%s] must not be negative", grade, class)
			}
		}
	}

	if c.Report.StatementDataStart >= c.Report.StatementDataEnd {
		return fmt.Errorf("report.statement_data_start must be before report.statement_data_end")
	}
	if c.Report.HotelDataStart >= c.Report.HotelPadEnd {
		return fmt.Errorf("report.hotel_data_start must be before report.hotel_pad_end")
	}
	if c.Report.ConveyanceDataStart >= c.Report.ConveyancePadEnd {
		return fmt.Errorf("report.conveyance_data_start must be before report.conveyance_pad_end")
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	return nil
}

// RatesConfig converts the configured tables into the rates package config.
func (c *Config) RatesConfig() rates.Config {
	return rates.Config{
		DefaultClass:      c.Rates.DefaultClass,
		BaselineAllowance: c.Rates.BaselineAllowance,
		CityClass:         c.Rates.CityClass,
		Allowance:         c.Rates.Allowance,
	}
}

// ReportLayout converts the configured row anchors into a report layout.
func (c *Config) ReportLayout() report.Layout {
	return report.Layout{
		StatementDataStart:  c.Report.StatementDataStart,
		StatementDataEnd:    c.Report.StatementDataEnd,
		StatementTotalsRow:  c.Report.StatementTotalsRow,
		HotelDataStart:      c.Report.HotelDataStart,
		HotelPadEnd:         c.Report.HotelPadEnd,
		HotelTotalsRow:      c.Report.HotelTotalsRow,
		ConveyanceDataStart: c.Report.ConveyanceDataStart,
		ConveyancePadEnd:    c.Report.ConveyancePadEnd,
		ConveyanceTotalsRow: c.Report.ConveyanceTotalsRow,
	}
}
