package config

import (
	"strings"
	"time"

	"github.com/runoshun/issue-butler/internal/domain"
	"github.com/spf13/viper"
)

// Setting keys shared by flags, environment and viper lookups.
const (
	KeyConfig       = "config"
	KeyToken        = "token"
	KeyTeam         = "team"
	KeyOwner        = "owner"
	KeyOutputDir    = "output_dir"
	KeyGitHubURL    = "github_url"
	KeyFetchTimeout = "fetch_timeout"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyLogFile      = "log_file"
	KeyChromeBin    = "chrome_bin"
	KeyNoSandbox    = "no_sandbox"
)

// EnvPrefix is prepended to every setting key when read from the environment.
const EnvPrefix = "BUTLER"

// legacyEnv lists unprefixed variable names still honoured for older setups.
var legacyEnv = map[string][]string{
	KeyToken: {"TOKEN", "GITHUB_TOKEN"},
	KeyTeam:  {"TEAM"},
	KeyOwner: {"OWNER"},
}

// Settings holds process-level settings resolved from flags and environment.
// Fields are ordered to minimize memory padding.
type Settings struct {
	ConfigPath   string
	Token        string
	Team         string
	Owner        string
	OutputDir    string
	GitHubURL    string
	LogLevel     string
	LogFormat    string
	LogFile      string
	ChromeBin    string
	FetchTimeout time.Duration
	NoSandbox    bool
}

// NewViper returns a viper instance with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	for key, names := range legacyEnv {
		// BindEnv takes the prefixed name first so it wins over legacy names.
		input := append([]string{key, EnvPrefix + "_" + strings.ToUpper(key)}, names...)
		_ = v.BindEnv(input...)
	}

	v.SetDefault(KeyConfig, domain.DefaultConfigFile)
	v.SetDefault(KeyGitHubURL, "https://api.github.com")
	v.SetDefault(KeyFetchTimeout, 30*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	return v
}

// LoadSettings reads the resolved settings out of v.
func LoadSettings(v *viper.Viper) Settings {
	return Settings{
		ConfigPath:   v.GetString(KeyConfig),
		Token:        v.GetString(KeyToken),
		Team:         v.GetString(KeyTeam),
		Owner:        v.GetString(KeyOwner),
		OutputDir:    v.GetString(KeyOutputDir),
		GitHubURL:    v.GetString(KeyGitHubURL),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LogFile:      v.GetString(KeyLogFile),
		ChromeBin:    v.GetString(KeyChromeBin),
		FetchTimeout: v.GetDuration(KeyFetchTimeout),
		NoSandbox:    v.GetBool(KeyNoSandbox),
	}
}
