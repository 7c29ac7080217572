package main

import (
	"testing"
	"time"
)

func TestComputeWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	start, end := computeWindow(now, 7)

	if want := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("end = %v, want %v", end, want)
	}
}

func TestFilterByDateRangeInclusive(t *testing.T) {
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	items := []NewsItem{
		{Title: "前日深夜", Published: time.Date(2024, 3, 3, 23, 59, 0, 0, time.UTC)},
		{Title: "開始日零時", Published: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{Title: "終了日夜", Published: time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC)},
		{Title: "翌日", Published: time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC)},
	}

	filtered := filterByDateRange(items, start, end)
	if len(filtered) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(filtered), filtered)
	}
	if filtered[0].Title != "開始日零時" || filtered[1].Title != "終了日夜" {
		t.Errorf("wrong items kept: %+v", filtered)
	}
}

func TestIsLaborRelated(t *testing.T) {
	if !isLaborRelated("テレワーク導入について") {
		t.Error("テレワーク text should be retained")
	}
	if isLaborRelated("今日の天気は晴れです") {
		t.Error("weather text should be dropped")
	}
}

func TestShouldIncludeOverride(t *testing.T) {
	normal := FeedConfig{Name: "一般ニュース"}
	override := FeedConfig{Name: "厚生労働省", AlwaysInclude: true}

	if shouldInclude(normal, "今日の天気は晴れです") {
		t.Error("non-labor text from a normal feed should be dropped")
	}
	if !shouldInclude(normal, "テレワーク導入について") {
		t.Error("labor text from a normal feed should be kept")
	}
	if !shouldInclude(override, "今日の天気は晴れです") {
		t.Error("always-include feed should bypass the keyword filter")
	}
}
