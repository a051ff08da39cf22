package phonepe

import (
	"errors"
	"os"
	"strings"
)

// Environment selects which credential set and endpoint set are active.
// It is resolved once per process/request context and never mutated.

type Environment string

const (
	EnvSandbox    Environment = "sandbox"
	EnvProduction Environment = "production"
)

// Endpoints is the gateway endpoint triplet for one environment.

type Endpoints struct {
	Initiate string
	Status   string
	Refund   string
}

var (
	sandboxEndpoints = Endpoints{
		Initiate: "https://api-preprod.phonepe.com/apis/pg-sandbox/pg/v1/pay",
		Status:   "https://api-preprod.phonepe.com/apis/pg-sandbox/pg/v1/status",
		Refund:   "https://api-preprod.phonepe.com/apis/pg-sandbox/pg/v1/refund",
	}
	productionEndpoints = Endpoints{
		Initiate: "https://api.phonepe.com/apis/hermes/pg/v1/pay",
		Status:   "https://api.phonepe.com/apis/hermes/pg/v1/status",
		Refund:   "https://api.phonepe.com/apis/hermes/pg/v1/refund",
	}
)

// Sandbox defaults. Production has no defaults: missing production credentials
// must fail validation, never silently fall back to a sandbox value.
const (
	defaultSandboxMerchantID = "PGTESTPAYUAT86"
	defaultSandboxSaltKey    = "96434309-7796-489d-8924-ab56988a6076"
	defaultSandboxSaltIndex  = "1"

	defaultProductionAppURL = "https://www.nibog.in"
)

// Config is the immutable gateway configuration for one environment.
// Construct it via ResolveConfig and validate it with Validate before use.

type Config struct {
	MerchantID  string
	SaltKey     string
	SaltIndex   string
	AppBaseURL  string
	Endpoints   Endpoints
	Environment Environment
}

func (c Config) IsProduction() bool { return c.Environment == EnvProduction }

// ParseEnvironment maps a deployment-level flag to an Environment.
// Anything other than "production" resolves to sandbox.
func ParseEnvironment(hint string) Environment {
	if strings.EqualFold(strings.TrimSpace(hint), string(EnvProduction)) {
		return EnvProduction
	}
	return EnvSandbox
}

// EnvironmentFromEnv reads the deployment flag PHONEPE_ENVIRONMENT
// (public fallback: PUBLIC_PHONEPE_ENVIRONMENT).
func EnvironmentFromEnv() Environment {
	return ParseEnvironment(getenvFirst("PHONEPE_ENVIRONMENT", "PUBLIC_PHONEPE_ENVIRONMENT"))
}

// ResolveConfig derives the gateway configuration for env from the process
// environment. Resolution order per field: explicit environment-specific
// variable, then generic publicly-exposed variable, then (sandbox only) a
// hard-coded sandbox default. No side effects beyond reading configuration.
func ResolveConfig(env Environment) Config {
	cfg := Config{Environment: env}

	if env == EnvProduction {
		cfg.MerchantID = getenvFirst("PHONEPE_PROD_MERCHANT_ID", "MERCHANT_ID")
		cfg.SaltKey = getenvFirst("PHONEPE_PROD_SALT_KEY", "SALT_KEY")
		cfg.SaltIndex = getenvFirst("PHONEPE_PROD_SALT_INDEX", "SALT_INDEX")
		cfg.Endpoints = productionEndpoints
	} else {
		cfg.MerchantID = getenvDefaultFirst(defaultSandboxMerchantID, "PHONEPE_TEST_MERCHANT_ID", "TEST_MERCHANT_ID")
		cfg.SaltKey = getenvDefaultFirst(defaultSandboxSaltKey, "PHONEPE_TEST_SALT_KEY", "TEST_SALT_KEY")
		cfg.SaltIndex = getenvDefaultFirst(defaultSandboxSaltIndex, "PHONEPE_TEST_SALT_INDEX", "TEST_SALT_INDEX")
		cfg.Endpoints = sandboxEndpoints
	}

	cfg.AppBaseURL = resolveAppBaseURL()
	return cfg
}

// WithRequestBaseURL returns a copy of the config whose AppBaseURL is derived
// from the current request's scheme+host. An empty baseURL keeps the resolved
// value. The receiver is never mutated.
func (c Config) WithRequestBaseURL(baseURL string) Config {
	if strings.TrimSpace(baseURL) != "" {
		c.AppBaseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

func resolveAppBaseURL() string {
	if v := getenvFirst("APP_BASE_URL", "PUBLIC_APP_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	// Last-resort literal; interactive requests override it per call.
	return defaultProductionAppURL
}

// ErrConfigInvalid marks any CRITICAL validator finding. Callers must abort
// before a network request is made; it is never degraded to a best-effort send.
var ErrConfigInvalid = errors.New("gateway configuration invalid")

func getenvFirst(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefaultFirst(def string, keys ...string) string {
	if v := getenvFirst(keys...); v != "" {
		return v
	}
	return def
}
