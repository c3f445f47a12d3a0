package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (POS_ prefix), flags, or YAML config files.
type Config struct {
	Addr    string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DataDir string `default:"./data" usage:"Directory for persisted state files" flag:"data-dir"`

	Shop     ShopConfig
	CORS     CORSConfig
	Graceful GracefulConfig
}

// ShopConfig is the shop identity printed on receipts.
type ShopConfig struct {
	Name   string   `default:"مقص بلال" usage:"Shop name shown on receipts"`
	Phones []string `default:"01289139006,01115291833" usage:"Phone numbers shown on receipts"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins []string `default:"*" usage:"Allowed CORS origins"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, and applies platform-provided defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "POS",
		Files:     []string{"config.yaml", "/etc/pos/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if port := os.Getenv("PORT"); port != "" && cfg.Addr == "0.0.0.0:8080" {
		cfg.Addr = "0.0.0.0:" + port
	}

	return &cfg, nil
}
