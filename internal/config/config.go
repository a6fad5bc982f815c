package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAPIServer = "api.hipchat.com"

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// LogMode "release" switches to JSON output teed into a rotated LogFile.
	LogMode  string
	LogLevel string
	LogFile  string

	HipChatAPIServer   string
	HipChatHTTPTimeout time.Duration

	// LogRoom enables the room log sink; LogRoomLevel is its threshold.
	LogRoom      string
	LogLabel     string
	LogRoomLevel string
	LogNotify    bool

	OTELServiceName string
	OTLPEndpoint    string
	OTLPInsecure    bool
	OTELSampleRatio float64
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:         ":8080",
		ShutdownTimeout:  10 * time.Second,
		LogFile:          "logs/app.log",
		HipChatAPIServer: DefaultAPIServer,
		LogRoomLevel:     "error",
		OTELServiceName:  "hipchat-notify",
		OTLPInsecure:     true,
		OTELSampleRatio:  1,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ShutdownTimeout = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("LOG_MODE"); v != "" {
		cfg.LogMode = v
	} else if os.Getenv("GIN_MODE") == "release" {
		cfg.LogMode = "release"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv("HIPCHAT_API_SERVER"); v != "" {
		cfg.HipChatAPIServer = v
	}
	if v := os.Getenv("HIPCHAT_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HipChatHTTPTimeout = time.Duration(n) * time.Second
		}
	}

	cfg.LogRoom = os.Getenv("HIPCHAT_LOG_ROOM")
	cfg.LogLabel = os.Getenv("HIPCHAT_LOG_LABEL")
	if v := os.Getenv("HIPCHAT_LOG_LEVEL"); v != "" {
		cfg.LogRoomLevel = v
	}
	if v := os.Getenv("HIPCHAT_LOG_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogNotify = b
		}
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}
	if v := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r >= 0 && r <= 1 {
			cfg.OTELSampleRatio = r
		}
	}

	return cfg
}
