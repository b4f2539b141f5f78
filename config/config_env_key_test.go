package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"guest": map[string]any{
			"userId": 1,
		},
		"ai": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "GUEST_USERID", want: "guest.userId"},
		{envKey: "AI_BASEURL", want: "ai.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsTokenTTLsAndDevSecrets(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Token.AccessTTL != defaultAccessTokenTTL {
		t.Fatalf("access TTL = %v, want %v", cfg.Token.AccessTTL, defaultAccessTokenTTL)
	}
	if cfg.Token.RefreshTTL != defaultRefreshTokenTTL {
		t.Fatalf("refresh TTL = %v, want %v", cfg.Token.RefreshTTL, defaultRefreshTokenTTL)
	}
	if cfg.SecretKey.Access != devAccessSecret || cfg.SecretKey.Refresh != devRefreshSecret {
		t.Fatal("expected dev fallback secrets when none configured")
	}
}

func TestApplyDefaults_KeepsConfiguredSecrets(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "configured-access"
	cfg.SecretKey.Refresh = "configured-refresh"
	applyDefaults(cfg)

	if cfg.SecretKey.Access != "configured-access" || cfg.SecretKey.Refresh != "configured-refresh" {
		t.Fatal("configured secrets must not be overwritten by dev defaults")
	}
}
