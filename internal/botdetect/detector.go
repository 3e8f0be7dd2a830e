// Package botdetect classifies crawler user agents against a static pattern
// table and assigns per-class crawl quotas. The table is process-wide
// read-only state, safe for unsynchronized concurrent reads.
package botdetect

import "regexp"

type BotType string

const (
	BotTypeSearchEngine BotType = "search_engine"
	BotTypeSocialMedia  BotType = "social_media"
	BotTypeAIScraper    BotType = "ai_scraper"
	BotTypeSEOTool      BotType = "seo_tool"
	BotTypeSiteMonitor  BotType = "site_monitor"
	BotTypeFeedReader   BotType = "feed_reader"
	BotTypeUnknown      BotType = "unknown"
)

type BotInfo struct {
	IsBot         bool    `json:"is_bot"`
	Name          string  `json:"name,omitempty"`
	Engine        string  `json:"engine,omitempty"`
	Type          BotType `json:"type,omitempty"`
	Trusted       bool    `json:"trusted"`
	CrawlPriority int     `json:"crawl_priority"`
}

type botPattern struct {
	name     string
	engine   string
	match    *regexp.Regexp
	typ      BotType
	priority int
	trusted  bool
}

var botPatterns = []botPattern{
	// Search engines
	{"Googlebot", "Google", regexp.MustCompile(`(?i)googlebot`), BotTypeSearchEngine, 10, true},
	{"Google-InspectionTool", "Google", regexp.MustCompile(`(?i)google-inspectiontool`), BotTypeSearchEngine, 10, true},
	{"Bingbot", "Bing", regexp.MustCompile(`(?i)bingbot`), BotTypeSearchEngine, 9, true},
	{"Baiduspider", "Baidu", regexp.MustCompile(`(?i)baiduspider`), BotTypeSearchEngine, 9, true},
	{"YandexBot", "Yandex", regexp.MustCompile(`(?i)yandexbot`), BotTypeSearchEngine, 8, true},
	{"Sogou Spider", "Sogou", regexp.MustCompile(`(?i)sogou.*spider`), BotTypeSearchEngine, 7, true},
	{"360Spider", "360", regexp.MustCompile(`(?i)360spider`), BotTypeSearchEngine, 7, true},
	{"DuckDuckBot", "DuckDuckGo", regexp.MustCompile(`(?i)duckduckbot`), BotTypeSearchEngine, 6, true},

	// Social media preview fetchers
	{"Facebookbot", "Facebook", regexp.MustCompile(`(?i)facebookexternalhit|facebot`), BotTypeSocialMedia, 5, true},
	{"Twitterbot", "Twitter", regexp.MustCompile(`(?i)twitterbot`), BotTypeSocialMedia, 5, true},
	{"TelegramBot", "Telegram", regexp.MustCompile(`(?i)telegrambot`), BotTypeSocialMedia, 5, true},

	// AI scrapers
	{"GPTBot", "OpenAI", regexp.MustCompile(`(?i)gptbot`), BotTypeAIScraper, 3, false},
	{"ClaudeBot", "Anthropic", regexp.MustCompile(`(?i)claudebot`), BotTypeAIScraper, 3, false},

	// SEO tools
	{"AhrefsBot", "Ahrefs", regexp.MustCompile(`(?i)ahrefsbot`), BotTypeSEOTool, 4, false},
	{"SemrushBot", "Semrush", regexp.MustCompile(`(?i)semrushbot`), BotTypeSEOTool, 4, false},

	// Monitors and feed readers
	{"UptimeRobot", "UptimeRobot", regexp.MustCompile(`(?i)uptimerobot`), BotTypeSiteMonitor, 2, false},
	{"Feedly", "Feedly", regexp.MustCompile(`(?i)feedly`), BotTypeFeedReader, 2, false},

	// Generic fallback, last so named bots win.
	{"Generic Crawler", "", regexp.MustCompile(`(?i)bot|crawler|spider|scraper`), BotTypeUnknown, 1, false},
}

// Per-minute visit quotas per bot class; trusted search engines get the
// largest share, unknown crawlers the smallest.
var visitQuotas = map[BotType]int{
	BotTypeSearchEngine: 30,
	BotTypeSocialMedia:  20,
	BotTypeAIScraper:    5,
	BotTypeSEOTool:      15,
	BotTypeSiteMonitor:  3,
	BotTypeFeedReader:   5,
	BotTypeUnknown:      2,
}

// Detect classifies a user agent. Non-bot agents report a zero-value
// BotInfo with IsBot false.
func Detect(userAgent string) BotInfo {
	if userAgent == "" {
		return BotInfo{}
	}
	for _, p := range botPatterns {
		if p.match.MatchString(userAgent) {
			return BotInfo{
				IsBot:         true,
				Name:          p.name,
				Engine:        p.engine,
				Type:          p.typ,
				Trusted:       p.trusted,
				CrawlPriority: p.priority,
			}
		}
	}
	return BotInfo{}
}

// QuotaFor returns the per-minute visit quota for a bot class.
func QuotaFor(t BotType) int {
	if q, ok := visitQuotas[t]; ok {
		return q
	}
	return visitQuotas[BotTypeUnknown]
}
