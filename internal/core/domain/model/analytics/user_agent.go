package analytics

import (
	"strings"

	"github.com/mssola/useragent"
)

// DefaultBotPatterns mark a user agent as a bot when any of them occurs in
// it, ignoring case.
var DefaultBotPatterns = []string{"bot", "python", "headless", "crawl", "spider", "facebook"}

// UserAgentData is what the dashboard shows about a visitor's browser.
type UserAgentData struct {
	Browser        string `json:"browser,omitempty"`
	BrowserVersion string `json:"browser_version,omitempty"`
	OS             string `json:"os,omitempty"`
	Platform       string `json:"platform,omitempty"`
	Mobile         bool   `json:"mobile"`
	Bot            bool   `json:"bot"`
}

func ParseUserAgent(raw string) UserAgentData {
	if raw == "" {
		return UserAgentData{}
	}
	ua := useragent.New(raw)
	name, version := ua.Browser()
	return UserAgentData{
		Browser:        name,
		BrowserVersion: version,
		OS:             ua.OS(),
		Platform:       ua.Platform(),
		Mobile:         ua.Mobile(),
		Bot:            ua.Bot(),
	}
}

// IsBotUserAgent reports whether raw looks automated. A missing user agent
// counts as a bot.
func IsBotUserAgent(raw string, patterns []string) bool {
	if raw == "" {
		return true
	}
	lower := strings.ToLower(raw)
	for _, p := range patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
