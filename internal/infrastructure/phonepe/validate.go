package phonepe

import (
	"fmt"
	"log"
	"strings"
)

// Severity classifies a validation issue. CRITICAL issues must abort before
// any request is sent; WARNING issues are logged only.

type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
)

type Issue struct {
	Severity Severity
	Message  string
}

func (i Issue) String() string { return string(i.Severity) + ": " + i.Message }

// ValidationResult is the outcome of a configuration cross-check.

type ValidationResult struct {
	Issues []Issue
}

func (r ValidationResult) IsValid() bool { return len(r.Issues) == 0 }

func (r ValidationResult) HasCritical() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

func (r ValidationResult) CriticalMessages() []string {
	var msgs []string
	for _, i := range r.Issues {
		if i.Severity == SeverityCritical {
			msgs = append(msgs, i.Message)
		}
	}
	return msgs
}

// Validate cross-checks the resolved configuration for dangerous mismatches.
// It must run before every payment-initiation call, not merely at startup,
// because configuration may be re-resolved per request.
func Validate(cfg Config) ValidationResult {
	var res ValidationResult
	add := func(sev Severity, msg string) {
		res.Issues = append(res.Issues, Issue{Severity: sev, Message: msg})
	}

	if cfg.MerchantID == "" {
		add(SeverityCritical, "MERCHANT_ID is missing")
	}
	if cfg.SaltKey == "" {
		add(SeverityCritical, "SALT_KEY is missing")
	}
	if cfg.SaltIndex == "" {
		add(SeverityCritical, "SALT_INDEX is missing")
	}
	if cfg.AppBaseURL == "" {
		add(SeverityCritical, "APP_BASE_URL is missing")
	}

	isProdEndpoint := strings.Contains(cfg.Endpoints.Initiate, "api.phonepe.com/apis/hermes")
	isTestEndpoint := strings.Contains(cfg.Endpoints.Initiate, "api-preprod.phonepe.com")
	isProdMerchant := cfg.MerchantID != "" &&
		!strings.HasPrefix(cfg.MerchantID, "TEST-") &&
		!strings.HasPrefix(cfg.MerchantID, "PGTEST")

	if cfg.IsProduction() && !isProdEndpoint {
		add(SeverityCritical, "environment/endpoint mismatch: production environment must use production endpoints")
	}
	if !cfg.IsProduction() && isProdEndpoint {
		add(SeverityCritical, "environment/endpoint mismatch: sandbox environment must use sandbox endpoints")
	}
	if isProdEndpoint && !isProdMerchant {
		add(SeverityCritical, "credential mismatch: production endpoints require a production merchant id")
	}
	if isTestEndpoint && isProdMerchant && !cfg.IsProduction() {
		add(SeverityWarning, "using a production merchant id with sandbox endpoints")
	}

	if cfg.IsProduction() {
		if cfg.MerchantID == "" || strings.Contains(cfg.MerchantID, "TEST") {
			add(SeverityCritical, "production mode requires a valid production merchant id")
		}
		if cfg.SaltKey == "" || strings.Contains(strings.ToLower(cfg.SaltKey), "test") {
			add(SeverityCritical, "production mode requires a valid production salt key")
		}
	}

	return res
}

// LogConfig logs the configuration status and returns an error wrapping
// ErrConfigInvalid when any CRITICAL issue is present.
func LogConfig(cfg Config) error {
	res := Validate(cfg)

	log.Printf("[phonepe][config] environment=%s merchant_set=%t salt_set=%t salt_index=%s app_url=%s endpoint=%s",
		cfg.Environment, cfg.MerchantID != "", cfg.SaltKey != "", cfg.SaltIndex, cfg.AppBaseURL, cfg.Endpoints.Initiate)

	for _, issue := range res.Issues {
		log.Printf("[phonepe][config] %s", issue)
	}

	if res.HasCritical() {
		return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(res.CriticalMessages(), "; "))
	}
	return nil
}
