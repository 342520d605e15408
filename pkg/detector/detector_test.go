package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDeviceType(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{"ipad is tablet", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", "tablet"},
		{"android tablet wins over android", "Mozilla/5.0 (Linux; Android 13; Tablet) AppleWebKit", "tablet"},
		{"android is mobile", "Mozilla/5.0 (Linux; Android 13; Pixel 7)", "mobile"},
		{"iphone is mobile", "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X)", "mobile"},
		{"mobi token is mobile", "Mozilla/5.0 (Mobile; rv:109.0)", "mobile"},
		{"plain browser is desktop", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "desktop"},
		{"empty user agent is desktop", "", "desktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectDeviceType(tt.userAgent))
		})
	}
}

func TestDetectCountry(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{"region subtag", "de-DE,de;q=0.9", "DE"},
		{"bare language code", "fr", "FR"},
		{"first entry wins", "en-US,en;q=0.9,de;q=0.8", "US"},
		{"leading whitespace", " pt-BR, pt;q=0.8", "BR"},
		{"missing header", "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCountry(tt.acceptLanguage))
		})
	}
}

func TestDetectSource(t *testing.T) {
	assert.Equal(t, "newsletter", DetectSource("newsletter"))
	assert.Equal(t, "newsletter", DetectSource("  newsletter  "))
	assert.Equal(t, "direct", DetectSource(""))
	assert.Equal(t, "direct", DetectSource("   "))
}

func TestGetClientIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", GetClientIP("192.168.1.1:1234", "10.0.0.1, 10.0.0.2", ""))
	assert.Equal(t, "10.0.0.3", GetClientIP("192.168.1.1:1234", "", "10.0.0.3"))
	assert.Equal(t, "192.168.1.1", GetClientIP("192.168.1.1:1234", "", ""))
}
