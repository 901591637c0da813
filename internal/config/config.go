package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	EnquiryURL        string
	SessionTTL        time.Duration
	SweepInterval     time.Duration
	SubmitRatePerMin  int
	GeneralRatePerMin int
	OTLPEndpoint      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	sessionTTL, _ := time.ParseDuration(os.Getenv("SESSION_TTL"))
	if sessionTTL == 0 {
		sessionTTL = 30 * time.Minute
	}

	sweepInterval, _ := time.ParseDuration(os.Getenv("SWEEP_INTERVAL"))
	if sweepInterval == 0 {
		sweepInterval = time.Minute
	}

	submitRate, _ := strconv.Atoi(os.Getenv("SUBMIT_RATE_PER_MIN"))
	if submitRate == 0 {
		submitRate = 5
	}

	generalRate, _ := strconv.Atoi(os.Getenv("GENERAL_RATE_PER_MIN"))
	if generalRate == 0 {
		generalRate = 100
	}

	return &Config{
		Addr:              addr,
		EnquiryURL:        os.Getenv("ENQUIRY_URL"),
		SessionTTL:        sessionTTL,
		SweepInterval:     sweepInterval,
		SubmitRatePerMin:  submitRate,
		GeneralRatePerMin: generalRate,
		OTLPEndpoint:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}
