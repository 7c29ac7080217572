package main

import (
	"testing"
	"time"
)

func TestGroupItemsOrdering(t *testing.T) {
	day1 := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	items := []NewsItem{
		{Title: "b-morning", Source: "B", Published: day2.Add(9 * time.Hour)},
		{Title: "a-morning", Source: "A", Published: day2.Add(9 * time.Hour)},
		{Title: "a-afternoon", Source: "A", Published: day2.Add(14 * time.Hour)},
		{Title: "old", Source: "A", Published: day1.Add(10 * time.Hour)},
	}

	grouped := groupItems(items)

	if grouped.DayCount() != 2 {
		t.Fatalf("day count = %d, want 2", grouped.DayCount())
	}
	if grouped.Days[0].Date != "2024-03-10" || grouped.Days[1].Date != "2024-03-09" {
		t.Errorf("days not in descending order: %q, %q", grouped.Days[0].Date, grouped.Days[1].Date)
	}

	newest := grouped.Days[0]
	if len(newest.Sources) != 2 || newest.Sources[0].Name != "A" || newest.Sources[1].Name != "B" {
		t.Fatalf("sources not in ascending order: %+v", newest.Sources)
	}

	a := newest.Sources[0]
	if a.Items[0].Title != "a-afternoon" || a.Items[1].Title != "a-morning" {
		t.Errorf("items within a source not ordered by published descending: %+v", a.Items)
	}

	if grouped.TotalItems() != 4 {
		t.Errorf("total items = %d, want 4", grouped.TotalItems())
	}
	if grouped.SourceCount() != 2 {
		t.Errorf("source count = %d, want 2", grouped.SourceCount())
	}
	if newest.ItemCount() != 3 {
		t.Errorf("day item count = %d, want 3", newest.ItemCount())
	}
}
