package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "skillset"

// Keys shared with the entry command's flag bindings.
const (
	KeyDebug        = "debug"
	KeyInstallerDir = "installer_dir"
	KeyShell        = "shell"
	KeyCatalogSkill = "catalog.skills"
	KeyCatalogMCP   = "catalog.mcp"
	KeyCatalogLocal = "catalog.locals"
)

// Config represents the installer settings.
type Config struct {
	Debug bool `mapstructure:"debug" yaml:"debug"`

	// InstallerDir holds the built-in catalogs. Empty means the directory
	// of the running executable.
	InstallerDir string `mapstructure:"installer_dir" yaml:"installer_dir"`

	// Shell interprets catalog commands with "-c".
	Shell string `mapstructure:"shell" yaml:"shell"`

	Catalog Catalog `mapstructure:"catalog" yaml:"catalog"`
}

// Catalog names the catalog files looked up in both tiers.
type Catalog struct {
	Skills string `mapstructure:"skills" yaml:"skills"`
	MCP    string `mapstructure:"mcp" yaml:"mcp"`
	Locals string `mapstructure:"locals" yaml:"locals"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix(strings.ToUpper(AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyDebug, false)
	viper.SetDefault(KeyInstallerDir, "")
	viper.SetDefault(KeyShell, "sh")
	viper.SetDefault(KeyCatalogSkill, "external.json")
	viper.SetDefault(KeyCatalogMCP, "mcp.json")
	viper.SetDefault(KeyCatalogLocal, "local.json")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.NewConfigError(errors.Wrap(err, "reading config file"))
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError(errors.Wrap(err, "unmarshaling config"))
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.NewConfigError(errs[0])
	}

	return &cfg, nil
}
