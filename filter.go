package main

import (
	"strings"
	"time"
)

// isLaborRelated reports whether the text mentions any labor keyword
func isLaborRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range laborKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// shouldInclude applies the topic filter for one feed. Feeds marked
// AlwaysInclude bypass the keyword check entirely.
func shouldInclude(feed FeedConfig, text string) bool {
	return feed.AlwaysInclude || isLaborRelated(text)
}

// truncateToDay drops the time-of-day portion of t
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// computeWindow returns the inclusive date range covering the past `days`
// days ending today: end = today, start = end - (days-1).
func computeWindow(now time.Time, days int) (time.Time, time.Time) {
	end := truncateToDay(now)
	start := end.AddDate(0, 0, -(days - 1))
	return start, end
}

// filterByDateRange keeps the items whose publish date (day granularity)
// falls inside [start, end]. Order is preserved.
func filterByDateRange(items []NewsItem, start, end time.Time) []NewsItem {
	var filtered []NewsItem
	for _, item := range items {
		day := truncateToDay(item.Published)
		if !day.Before(start) && !day.After(end) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
