package phonepe

import (
	"errors"
	"strings"
	"testing"
)

func sandboxTestConfig() Config {
	return Config{
		MerchantID:  defaultSandboxMerchantID,
		SaltKey:     defaultSandboxSaltKey,
		SaltIndex:   defaultSandboxSaltIndex,
		AppBaseURL:  "https://www.nibog.in",
		Endpoints:   sandboxEndpoints,
		Environment: EnvSandbox,
	}
}

func productionTestConfig() Config {
	return Config{
		MerchantID:  "NIBOGONLINE",
		SaltKey:     "2d4cd5c3-8539-4f28-b5fe-b00e01fb11ba",
		SaltIndex:   "1",
		AppBaseURL:  "https://www.nibog.in",
		Endpoints:   productionEndpoints,
		Environment: EnvProduction,
	}
}

func TestValidate_CleanConfigs(t *testing.T) {
	if res := Validate(sandboxTestConfig()); !res.IsValid() {
		t.Fatalf("sandbox defaults should validate cleanly, got %v", res.Issues)
	}
	if res := Validate(productionTestConfig()); !res.IsValid() {
		t.Fatalf("production config should validate cleanly, got %v", res.Issues)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cfg := sandboxTestConfig()
	cfg.MerchantID = ""
	cfg.SaltKey = ""
	cfg.SaltIndex = ""
	cfg.AppBaseURL = ""

	res := Validate(cfg)
	if !res.HasCritical() {
		t.Fatalf("expected critical issues for missing fields")
	}
	if got := len(res.CriticalMessages()); got < 4 {
		t.Fatalf("expected one critical per missing field, got %d: %v", got, res.Issues)
	}
}

func TestValidate_EnvironmentEndpointMismatch(t *testing.T) {
	t.Run("production environment on sandbox endpoints", func(t *testing.T) {
		cfg := productionTestConfig()
		cfg.Endpoints = sandboxEndpoints
		res := Validate(cfg)
		if !res.HasCritical() {
			t.Fatalf("expected critical mismatch, got %v", res.Issues)
		}
	})

	t.Run("sandbox environment on production endpoints", func(t *testing.T) {
		cfg := sandboxTestConfig()
		cfg.MerchantID = "NIBOGONLINE" // keep the merchant check out of the way
		cfg.Endpoints = productionEndpoints
		res := Validate(cfg)
		if !res.HasCritical() {
			t.Fatalf("expected critical mismatch, got %v", res.Issues)
		}
	})
}

func TestValidate_CredentialMismatch(t *testing.T) {
	t.Run("test merchant on production endpoints is critical", func(t *testing.T) {
		cfg := productionTestConfig()
		cfg.MerchantID = defaultSandboxMerchantID
		res := Validate(cfg)
		if !res.HasCritical() {
			t.Fatalf("expected critical credential mismatch, got %v", res.Issues)
		}
	})

	t.Run("test salt in production is critical", func(t *testing.T) {
		cfg := productionTestConfig()
		cfg.SaltKey = "my-test-salt"
		res := Validate(cfg)
		if !res.HasCritical() {
			t.Fatalf("expected critical salt issue, got %v", res.Issues)
		}
	})

	t.Run("production merchant on sandbox endpoints is only a warning", func(t *testing.T) {
		cfg := sandboxTestConfig()
		cfg.MerchantID = "NIBOGONLINE"
		res := Validate(cfg)
		if res.HasCritical() {
			t.Fatalf("expected no critical issue, got %v", res.Issues)
		}
		if res.IsValid() {
			t.Fatalf("expected a warning, got none")
		}
	})
}

func TestLogConfig(t *testing.T) {
	if err := LogConfig(sandboxTestConfig()); err != nil {
		t.Fatalf("expected clean sandbox config to pass, got %v", err)
	}

	cfg := sandboxTestConfig()
	cfg.SaltKey = ""
	err := LogConfig(cfg)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "SALT_KEY") {
		t.Fatalf("expected message to name the missing field, got %v", err)
	}
}
