package main

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// カード表示用の概要の最大文字数
const cardSummaryRunes = 120

type articleCard struct {
	Title   string
	Link    string
	Summary string
	Source  string
	Time    string
}

type reportDay struct {
	Date  string
	Count int
	Cards []articleCard
}

type summaryTopicView struct {
	Text        string
	Keywords    []string
	KeywordAttr string
}

type summaryGroupView struct {
	Icon   string
	Label  string
	Topics []summaryTopicView
}

type htmlReportData struct {
	PeriodStart string
	PeriodEnd   string
	GeneratedAt string
	TotalItems  int
	SourceCount int
	DayCount    int
	Summary     []summaryGroupView
	Days        []reportDay
	Archive     []ArchiveEntry
}

// All dynamic fields pass through html/template's contextual escaping; no
// report text is ever concatenated into the document by hand.
var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>労務関連ニュース {{.PeriodStart}} 〜 {{.PeriodEnd}}</title>
<style>
body { font-family: "Hiragino Sans", "Noto Sans JP", sans-serif; margin: 0; background: #f5f6f8; color: #222; }
header { background: #1a3c6e; color: #fff; padding: 24px 16px; }
header h1 { margin: 0 0 4px; font-size: 1.5em; }
header .period { margin: 0; opacity: 0.85; }
.stats { display: flex; gap: 24px; margin-top: 12px; }
.stat-value { font-size: 1.4em; font-weight: bold; margin-right: 4px; }
.stat-label { opacity: 0.8; font-size: 0.9em; }
main { max-width: 860px; margin: 0 auto; padding: 16px; }
section { margin-bottom: 28px; }
.summary { background: #fff; border-radius: 8px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.summary h2 { margin-top: 0; font-size: 1.2em; }
.summary-category h3 { margin-bottom: 6px; font-size: 1.05em; }
.summary-category ul { margin: 0 0 12px; padding-left: 20px; }
.summary-category li { margin-bottom: 6px; line-height: 1.6; }
.tag { display: inline-block; background: #e8eef7; color: #1a3c6e; border-radius: 10px; padding: 1px 8px; margin-left: 6px; font-size: 0.75em; }
.day h2 { font-size: 1.15em; border-bottom: 2px solid #1a3c6e; padding-bottom: 4px; }
.card { background: #fff; border-radius: 8px; padding: 12px 16px; margin-bottom: 10px; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.card h3 { margin: 0 0 6px; font-size: 1em; }
.card a { color: #1a3c6e; text-decoration: none; }
.card a:hover { text-decoration: underline; }
.card p { margin: 0 0 8px; color: #555; font-size: 0.9em; line-height: 1.6; }
.meta { font-size: 0.8em; color: #888; }
.badge { background: #1a3c6e; color: #fff; border-radius: 3px; padding: 1px 6px; margin-right: 8px; }
.archive ul { list-style: none; padding: 0; }
.archive li { margin-bottom: 4px; }
.archive li.current a { font-weight: bold; }
footer { text-align: center; color: #999; font-size: 0.8em; padding: 16px; }
</style>
</head>
<body>
<header>
<h1>労務関連ニュース</h1>
<p class="period">期間: {{.PeriodStart}} 〜 {{.PeriodEnd}}</p>
<div class="stats">
<div class="stat"><span class="stat-value">{{.TotalItems}}</span><span class="stat-label">件</span></div>
<div class="stat"><span class="stat-value">{{.SourceCount}}</span><span class="stat-label">ソース</span></div>
<div class="stat"><span class="stat-value">{{.DayCount}}</span><span class="stat-label">日分</span></div>
</div>
</header>
<main>
{{if .Summary}}<section class="summary">
<h2>🤖 今週のサマリー</h2>
{{range .Summary}}<div class="summary-category">
<h3>{{.Icon}} {{.Label}}</h3>
<ul>
{{range .Topics}}<li data-keywords="{{.KeywordAttr}}">{{.Text}}{{range .Keywords}}<span class="tag">{{.}}</span>{{end}}</li>
{{end}}</ul>
</div>
{{end}}</section>
{{end}}{{range .Days}}<section class="day">
<h2>📅 {{.Date}}（{{.Count}}件）</h2>
{{range .Cards}}<article class="card">
<h3><a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a></h3>
{{if .Summary}}<p>{{.Summary}}</p>
{{end}}<div class="meta"><span class="badge">{{.Source}}</span><span class="time">{{.Time}}</span></div>
</article>
{{end}}</section>
{{end}}<section class="archive">
<h2>📂 アーカイブ</h2>
<ul>
{{range .Archive}}<li{{if .IsCurrent}} class="current"{{end}}><a href="{{.FileName}}">{{.PeriodLabel}}</a>{{if .IsCurrent}}（今回）{{end}}</li>
{{end}}</ul>
</section>
</main>
<footer>生成日時: {{.GeneratedAt}}</footer>
</body>
</html>
`))

// generateHTML renders the standalone HTML report. Output is deterministic
// for a fixed generatedAt.
func generateHTML(grouped GroupedNews, topics []SummaryTopic, archive []ArchiveEntry, start, end, generatedAt time.Time) (string, error) {
	data := htmlReportData{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		GeneratedAt: generatedAt.Format("2006-01-02 15:04"),
		TotalItems:  grouped.TotalItems(),
		SourceCount: grouped.SourceCount(),
		DayCount:    grouped.DayCount(),
		Summary:     buildSummaryViews(topics),
		Archive:     archive,
	}

	for _, day := range grouped.Days {
		view := reportDay{Date: day.Date, Count: day.ItemCount()}
		for _, source := range day.Sources {
			for _, item := range source.Items {
				view.Cards = append(view.Cards, articleCard{
					Title:   item.Title,
					Link:    item.Link,
					Summary: truncate(item.Summary, cardSummaryRunes),
					Source:  item.Source,
					Time:    item.Published.Format("15:04"),
				})
			}
		}
		data.Days = append(data.Days, view)
	}

	var b strings.Builder
	if err := htmlReportTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %v", err)
	}
	return b.String(), nil
}

func buildSummaryViews(topics []SummaryTopic) []summaryGroupView {
	var views []summaryGroupView
	for _, group := range groupTopicsByCategory(topics) {
		view := summaryGroupView{Icon: group.Icon, Label: group.Label}
		for _, topic := range group.Topics {
			view.Topics = append(view.Topics, summaryTopicView{
				Text:        topic.Text,
				Keywords:    topic.Keywords,
				KeywordAttr: strings.Join(topic.Keywords, ","),
			})
		}
		views = append(views, view)
	}
	return views
}

// saveHTML writes the report as docs/index.html (always the latest run) and
// as the archival docs/{start}_{end}.html copy
func saveHTML(docsDir string, start, end time.Time, content string) (string, error) {
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %v", err)
	}
	indexPath := filepath.Join(docsDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write index.html: %v", err)
	}
	archivalName := fmt.Sprintf("%s_%s.html", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err := os.WriteFile(filepath.Join(docsDir, archivalName), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %v", archivalName, err)
	}
	return indexPath, nil
}
