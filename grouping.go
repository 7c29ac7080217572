package main

import (
	"sort"
)

// SourceGroup holds one source's items within a single day
type SourceGroup struct {
	Name  string
	Items []NewsItem
}

// DayGroup holds all items published on one calendar day
type DayGroup struct {
	Date    string // YYYY-MM-DD
	Sources []SourceGroup
}

// GroupedNews is the fully ordered report structure: days descending,
// sources ascending within a day, items by publish time descending within
// a source.
type GroupedNews struct {
	Days []DayGroup
}

func (d DayGroup) ItemCount() int {
	count := 0
	for _, source := range d.Sources {
		count += len(source.Items)
	}
	return count
}

func (g GroupedNews) TotalItems() int {
	count := 0
	for _, day := range g.Days {
		count += day.ItemCount()
	}
	return count
}

func (g GroupedNews) DayCount() int {
	return len(g.Days)
}

// SourceCount returns the number of distinct source names across all days
func (g GroupedNews) SourceCount() int {
	seen := make(map[string]bool)
	for _, day := range g.Days {
		for _, source := range day.Sources {
			seen[source.Name] = true
		}
	}
	return len(seen)
}

// groupItems partitions items by day and source into a deterministic order
func groupItems(items []NewsItem) GroupedNews {
	byDate := make(map[string][]NewsItem)
	for _, item := range items {
		date := item.Published.Format("2006-01-02")
		byDate[date] = append(byDate[date], item)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	grouped := GroupedNews{}
	for _, date := range dates {
		bySource := make(map[string][]NewsItem)
		for _, item := range byDate[date] {
			bySource[item.Source] = append(bySource[item.Source], item)
		}

		sources := make([]string, 0, len(bySource))
		for source := range bySource {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		day := DayGroup{Date: date}
		for _, source := range sources {
			sourceItems := bySource[source]
			sort.SliceStable(sourceItems, func(i, j int) bool {
				return sourceItems[i].Published.After(sourceItems[j].Published)
			})
			day.Sources = append(day.Sources, SourceGroup{Name: source, Items: sourceItems})
		}
		grouped.Days = append(grouped.Days, day)
	}
	return grouped
}
