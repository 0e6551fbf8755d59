package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Solana RPC settings
	RPCURL     string
	Commitment string

	// Jupiter API settings
	JupiterBaseURL string
	APIKey         string

	// Wallet settings
	SecretKey   string // base58-encoded 64-byte key
	KeypairPath string // solana-keygen JSON file, used when SecretKey is empty

	// Optional integrator fee. Disabled unless both are set and FeeBps > 0.
	FeeAccount string
	FeeBps     int

	// HTTP client settings
	HTTPTimeout  time.Duration
	MaxRetries   int
	RetryBackoff time.Duration

	// Confirmation polling
	ConfirmTimeout time.Duration
}

func Load() *Config {
	return &Config{
		// RPC
		RPCURL:     getEnv("RPC_URL", "https://api.mainnet-beta.solana.com"),
		Commitment: getEnv("COMMITMENT", "confirmed"),

		// Jupiter
		JupiterBaseURL: getEnv("JUPITER_BASE_URL", "https://lite-api.jup.ag"),
		APIKey:         getEnv("API_KEY", ""),

		// Wallet
		SecretKey:   getEnv("SECRET_KEY", ""),
		KeypairPath: getEnv("KEYPAIR_PATH", ""),

		// Integrator fee
		FeeAccount: getEnv("FEE_ACCOUNT", ""),
		FeeBps:     getIntEnv("FEE_BPS", 0),

		// HTTP
		HTTPTimeout:  getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		MaxRetries:   getIntEnv("MAX_RETRIES", 3),
		RetryBackoff: getDurationEnv("RETRY_BACKOFF", 1*time.Second),

		// Confirmation
		ConfirmTimeout: getDurationEnv("CONFIRM_TIMEOUT", 60*time.Second),
	}
}

// IntegratorFee returns the configured fee account and bps, or ok=false
// when the fee is disabled.
func (c *Config) IntegratorFee() (account string, bps uint16, ok bool) {
	if c.FeeAccount == "" || c.FeeBps <= 0 {
		return "", 0, false
	}
	return c.FeeAccount, uint16(c.FeeBps), true
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
