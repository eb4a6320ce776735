package core

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Upload backends
const (
	UploadBackendLocal = "local"
	UploadBackendB2    = "b2"
)

type (
	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		Build        string
		RollbarToken string
		WebIndex     string // index.html on disk; the embedded one is served when empty
		Server       ServerConfig
		Upload       UploadConfig
		B2           B2Config
		NATS         NATSConfig
	}

	ServerConfig struct {
		Port            int
		DebugHost       string // pprof and expvar; disabled when empty
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	UploadConfig struct {
		Dir     string
		Backend string
	}

	B2Config struct {
		KeyID  string
		AppKey string
		Bucket string
	}

	NATSConfig struct {
		URL string
	}
)

func (sc ServerConfig) Address() string {
	return fmt.Sprintf(":%d", sc.Port)
}

// NewConfig loads the Config from the process arguments and environment, exiting on failure.
func NewConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return conf
}

// LoadConfig builds the Config from (lowest to highest priority):
// defaults, the .env file, environment variables and command line flags.
func LoadConfig(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("darasa", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path to a .env file (ignored if missing)")
	flags.Int("port", 3000, "HTTP port")
	flags.String("upload-dir", "uploads", "directory where uploaded files are stored")
	flags.Bool("debug", true, "debug mode")
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parsing flags")
	}

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			return nil, errors.Wrapf(err, "loading %s", *envFile)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", *envFile)
	}

	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("build", "dev")
	v.SetDefault("port", 3000)
	v.SetDefault("server.debugHost", "")
	v.SetDefault("server.shutdownTimeout", 10*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.backend", UploadBackendLocal)
	v.SetDefault("b2.keyId", "")
	v.SetDefault("b2.appKey", "")
	v.SetDefault("b2.bucket", "")
	v.SetDefault("nats.url", "")
	v.SetDefault("rollbar.token", "")
	v.SetDefault("web.index", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	// upload.dir <- UPLOAD_DIR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{"port": "port", "upload.dir": "upload-dir", "debug": "debug"} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, errors.Wrapf(err, "binding flag %s", flag)
		}
	}

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     env == "TEST",
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbar.token"),
		WebIndex:     v.GetString("web.index"),
		Server: ServerConfig{
			Port:            v.GetInt("port"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Upload: UploadConfig{
			Dir:     v.GetString("upload.dir"),
			Backend: strings.ToLower(v.GetString("upload.backend")),
		},
		B2: B2Config{
			KeyID:  v.GetString("b2.keyId"),
			AppKey: v.GetString("b2.appKey"),
			Bucket: v.GetString("b2.bucket"),
		},
		NATS: NATSConfig{URL: v.GetString("nats.url")},
	}

	switch conf.Upload.Backend {
	case UploadBackendLocal, UploadBackendB2:
	default:
		return nil, errors.Errorf("unknown upload backend %q", conf.Upload.Backend)
	}
	return conf, nil
}
