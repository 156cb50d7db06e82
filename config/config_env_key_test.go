package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"site": map[string]any{
			"baseUrl":        "https://fannifix.com",
			"defaultCountry": "kw",
		},
		"data": map[string]any{
			"path": "data",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SITE_BASEURL", want: "site.baseUrl"},
		{envKey: "SITE_DEFAULTCOUNTRY", want: "site.defaultCountry"},
		{envKey: "DATA_PATH", want: "data.path"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Site.BaseURL != defaultBaseURL {
		t.Fatalf("Site.BaseURL = %q, want %q", cfg.Site.BaseURL, defaultBaseURL)
	}
	if cfg.Site.DefaultCountry != defaultCountryCode {
		t.Fatalf("Site.DefaultCountry = %q, want %q", cfg.Site.DefaultCountry, defaultCountryCode)
	}
	if cfg.Site.LatestListingsLimit != defaultLatestListings {
		t.Fatalf("Site.LatestListingsLimit = %d, want %d", cfg.Site.LatestListingsLimit, defaultLatestListings)
	}
	if cfg.Data.Path != defaultDataPath {
		t.Fatalf("Data.Path = %q, want %q", cfg.Data.Path, defaultDataPath)
	}
}
