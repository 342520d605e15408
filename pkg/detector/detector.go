package detector

import "strings"

// DetectDeviceType buckets a user agent into mobile, desktop or tablet.
// Tablets are checked first since tablet UAs often also carry "Android" or
// "Mobile" tokens. An empty user agent counts as desktop.
func DetectDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	tabletKeywords := []string{"tablet", "ipad"}
	for _, keyword := range tabletKeywords {
		if strings.Contains(ua, keyword) {
			return "tablet"
		}
	}

	mobileKeywords := []string{"mobi", "android", "iphone"}
	for _, keyword := range mobileKeywords {
		if strings.Contains(ua, keyword) {
			return "mobile"
		}
	}

	return "desktop"
}

// DetectCountry derives a coarse country bucket from the Accept-Language
// header: the region subtag of the first entry ("de-DE,de;q=0.9" -> "DE").
// A bare language code is uppercased and used as-is ("fr" -> "FR"); existing
// consumers depend on those bucket values, so this fallback stays.
func DetectCountry(acceptLanguage string) string {
	if acceptLanguage == "" {
		return "UNKNOWN"
	}

	first := strings.TrimSpace(strings.Split(acceptLanguage, ",")[0])
	if first == "" {
		return "UNKNOWN"
	}

	parts := strings.Split(first, "-")
	if len(parts) >= 2 {
		return strings.ToUpper(parts[1])
	}

	return strings.ToUpper(parts[0])
}

// DetectSource returns the trimmed src query parameter, or "direct" when the
// visit carried no tag.
func DetectSource(src string) string {
	if s := strings.TrimSpace(src); s != "" {
		return s
	}

	return "direct"
}

func GetClientIP(remoteAddr, xForwardedFor, xRealIP string) string {
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xRealIP != "" {
		return xRealIP
	}

	if idx := strings.LastIndex(remoteAddr, ":"); idx != -1 {
		return remoteAddr[:idx]
	}

	return remoteAddr
}
