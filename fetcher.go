package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// rawEntry is the minimal view of a feed entry the normalizer needs.
// Each feed-parsing library gets its own adapter; missing fields come back
// as empty strings or nil times.
type rawEntry interface {
	EntryTitle() string
	EntryLink() string
	EntrySummary() string
	PublishedTime() *time.Time
	UpdatedTime() *time.Time
}

// gofeedEntry adapts *gofeed.Item to rawEntry
type gofeedEntry struct {
	item *gofeed.Item
}

func (e gofeedEntry) EntryTitle() string { return e.item.Title }

func (e gofeedEntry) EntryLink() string { return e.item.Link }

func (e gofeedEntry) EntrySummary() string {
	if e.item.Description != "" {
		return e.item.Description
	}
	return e.item.Content
}

func (e gofeedEntry) PublishedTime() *time.Time { return e.item.PublishedParsed }

func (e gofeedEntry) UpdatedTime() *time.Time { return e.item.UpdatedParsed }

var feedClient = &http.Client{
	Timeout: 30 * time.Second,
}

// fetchFeed downloads and parses one RSS feed, returning the normalized items
// that pass the topic filter. A fetch or parse failure is returned as an error
// so the caller can log it and continue with the remaining feeds.
func fetchFeed(feed FeedConfig) ([]NewsItem, error) {
	req, err := http.NewRequest("GET", feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := feedClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("RSS parse failed: %v", err)
	}

	now := time.Now()
	var items []NewsItem
	for _, item := range parsed.Items {
		news, fullText := normalizeEntry(gofeedEntry{item: item}, feed.Name, now)
		if shouldInclude(feed, fullText) {
			items = append(items, news)
		}
	}
	return items, nil
}
