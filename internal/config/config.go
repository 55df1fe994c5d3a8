package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type FCMConfig struct {
	ServerKey string
	Endpoint  string
}

type PlannerConfig struct {
	Endpoint string
}

type Config struct {
	R2      R2Config
	FCM     FCMConfig
	Planner PlannerConfig
}

func LoadConfig() *Config {
	cfg := &Config{}

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// FCM config
	cfg.FCM.ServerKey = os.Getenv("FCM_SERVER_KEY")
	cfg.FCM.Endpoint = os.Getenv("FCM_ENDPOINT")
	if cfg.FCM.Endpoint == "" {
		cfg.FCM.Endpoint = "https://fcm.googleapis.com/fcm"
	}

	// Travel planner config. Left empty when no planner is deployed.
	cfg.Planner.Endpoint = os.Getenv("PLANNER_ENDPOINT")

	return cfg
}
