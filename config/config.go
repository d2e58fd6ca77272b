// Package config loads application settings from the environment, an
// optional .env file and built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CONSHER_APP_ENV.
const EnvPrefix = "CONSHER"

type Config struct {
	App struct {
		Name string
		Env  string
	} `mapstructure:"app"`

	Contact struct {
		Email    string
		Phone    string
		WhatsApp string `mapstructure:"whatsapp"`
	} `mapstructure:"contact"`

	Admin struct {
		Email    string
		Password string
	} `mapstructure:"admin"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Seed struct {
		Enabled bool
	} `mapstructure:"seed"`
}

// IsDev reports whether the app runs in the dev environment.
func (c Config) IsDev() bool {
	return c.App.Env == "dev"
}

// WhatsAppURL returns the wa.me link for the contact number, or "" when no
// number is configured.
func (c Config) WhatsAppURL() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Contact.WhatsApp)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ConsHer")
	v.SetDefault("app.env", "dev")
	v.SetDefault("contact.email", "contacto@consher.mx")
	v.SetDefault("contact.phone", "(55) 1234 5678")
	v.SetDefault("contact.whatsapp", "5215512345678")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("metrics.enabled", true)
}

// Load reads dotEnvPath (skipped when it does not exist) and then the
// CONSHER_* environment on top of the defaults.
func Load(dotEnvPath string) (Config, error) {
	var c Config

	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return c, fmt.Errorf("config: load %s: %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return c, fmt.Errorf("config: stat %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: unmarshal: %w", err)
	}

	// Demo data is loaded in dev unless CONSHER_SEED_ENABLED says otherwise.
	if v.IsSet("seed.enabled") {
		c.Seed.Enabled = v.GetBool("seed.enabled")
	} else {
		c.Seed.Enabled = c.IsDev()
	}
	return c, nil
}
