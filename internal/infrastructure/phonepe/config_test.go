package phonepe

import "testing"

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PHONEPE_ENVIRONMENT", "PUBLIC_PHONEPE_ENVIRONMENT",
		"PHONEPE_PROD_MERCHANT_ID", "MERCHANT_ID",
		"PHONEPE_PROD_SALT_KEY", "SALT_KEY",
		"PHONEPE_PROD_SALT_INDEX", "SALT_INDEX",
		"PHONEPE_TEST_MERCHANT_ID", "TEST_MERCHANT_ID",
		"PHONEPE_TEST_SALT_KEY", "TEST_SALT_KEY",
		"PHONEPE_TEST_SALT_INDEX", "TEST_SALT_INDEX",
		"APP_BASE_URL", "PUBLIC_APP_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestParseEnvironment(t *testing.T) {
	cases := map[string]Environment{
		"production": EnvProduction,
		"PRODUCTION": EnvProduction,
		" Production ": EnvProduction,
		"sandbox":    EnvSandbox,
		"test":       EnvSandbox,
		"":           EnvSandbox,
		"prod":       EnvSandbox,
	}
	for hint, want := range cases {
		if got := ParseEnvironment(hint); got != want {
			t.Fatalf("ParseEnvironment(%q) = %s, want %s", hint, got, want)
		}
	}
}

func TestResolveConfig_SandboxDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := ResolveConfig(EnvSandbox)
	if cfg.MerchantID != defaultSandboxMerchantID {
		t.Fatalf("merchant id: got %s", cfg.MerchantID)
	}
	if cfg.SaltKey != defaultSandboxSaltKey {
		t.Fatalf("salt key: got %s", cfg.SaltKey)
	}
	if cfg.SaltIndex != defaultSandboxSaltIndex {
		t.Fatalf("salt index: got %s", cfg.SaltIndex)
	}
	if cfg.Endpoints != sandboxEndpoints {
		t.Fatalf("expected sandbox endpoints, got %+v", cfg.Endpoints)
	}
	if cfg.IsProduction() {
		t.Fatalf("sandbox config reports production")
	}
}

func TestResolveConfig_SandboxOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PHONEPE_TEST_MERCHANT_ID", "PGTESTCUSTOM")
	t.Setenv("TEST_SALT_KEY", "custom-salt")

	cfg := ResolveConfig(EnvSandbox)
	if cfg.MerchantID != "PGTESTCUSTOM" {
		t.Fatalf("explicit variable should win, got %s", cfg.MerchantID)
	}
	if cfg.SaltKey != "custom-salt" {
		t.Fatalf("generic fallback variable should apply, got %s", cfg.SaltKey)
	}
}

func TestResolveConfig_ProductionHasNoDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := ResolveConfig(EnvProduction)
	if cfg.MerchantID != "" || cfg.SaltKey != "" || cfg.SaltIndex != "" {
		t.Fatalf("production must not fall back to sandbox credentials: %+v", cfg)
	}
	if cfg.Endpoints != productionEndpoints {
		t.Fatalf("expected production endpoints, got %+v", cfg.Endpoints)
	}
	// and the validator must refuse it
	if err := LogConfig(cfg); err == nil {
		t.Fatalf("expected unresolved production config to fail validation")
	}
}

func TestResolveConfig_ProductionFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PHONEPE_PROD_MERCHANT_ID", "NIBOGONLINE")
	t.Setenv("SALT_KEY", "2d4cd5c3-8539-4f28-b5fe-b00e01fb11ba")
	t.Setenv("SALT_INDEX", "2")

	cfg := ResolveConfig(EnvProduction)
	if cfg.MerchantID != "NIBOGONLINE" || cfg.SaltKey != "2d4cd5c3-8539-4f28-b5fe-b00e01fb11ba" || cfg.SaltIndex != "2" {
		t.Fatalf("unexpected production credentials: %+v", cfg)
	}
}

func TestResolveConfig_AppBaseURL(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_BASE_URL", "https://staging.nibog.in/")

	cfg := ResolveConfig(EnvSandbox)
	if cfg.AppBaseURL != "https://staging.nibog.in" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.AppBaseURL)
	}
}

func TestEnvironmentFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PUBLIC_PHONEPE_ENVIRONMENT", "production")
	if got := EnvironmentFromEnv(); got != EnvProduction {
		t.Fatalf("expected public fallback variable to apply, got %s", got)
	}

	t.Setenv("PHONEPE_ENVIRONMENT", "sandbox")
	if got := EnvironmentFromEnv(); got != EnvSandbox {
		t.Fatalf("expected explicit variable to win, got %s", got)
	}
}

func TestWithRequestBaseURL(t *testing.T) {
	cfg := sandboxTestConfig()

	derived := cfg.WithRequestBaseURL("https://pay.nibog.in/")
	if derived.AppBaseURL != "https://pay.nibog.in" {
		t.Fatalf("got %s", derived.AppBaseURL)
	}
	if cfg.AppBaseURL != "https://www.nibog.in" {
		t.Fatalf("receiver mutated: %s", cfg.AppBaseURL)
	}
	if kept := cfg.WithRequestBaseURL("  "); kept.AppBaseURL != cfg.AppBaseURL {
		t.Fatalf("blank override should keep resolved value, got %s", kept.AppBaseURL)
	}
}
