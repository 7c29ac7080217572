package main

// FeedConfig describes one RSS feed to collect from.
// AlwaysInclude が true のフィードはキーワードフィルタを通さず全件収集する。
type FeedConfig struct {
	Name          string
	URL           string
	AlwaysInclude bool
}

// 収集対象のRSSフィード
var rssFeeds = []FeedConfig{
	{Name: "厚生労働省", URL: "https://www.mhlw.go.jp/stf/rss/shinchaku.xml", AlwaysInclude: true},
	{Name: "厚生労働省（報道発表）", URL: "https://www.mhlw.go.jp/stf/rss/houdou.xml", AlwaysInclude: true},
	{Name: "労働新聞社", URL: "https://www.rodo.co.jp/feed/"},
	{Name: "労務ドットコム", URL: "https://roumu.com/feed/"},
	{Name: "日本の人事部", URL: "https://jinjibu.jp/rss/news.rss"},
}

// 労務関連キーワード（フィルタリング用）
var laborKeywords = []string{
	"労働", "雇用", "賃金", "給与", "残業", "働き方", "労務",
	"人事", "採用", "退職", "解雇", "休暇", "有給", "育児",
	"介護", "ハラスメント", "パワハラ", "セクハラ", "労災",
	"社会保険", "厚生年金", "健康保険", "雇用保険", "労働基準",
	"最低賃金", "同一労働", "テレワーク", "在宅勤務", "副業",
	"兼業", "定年", "再雇用", "派遣", "契約社員", "正社員",
	"非正規", "就業規則", "労働組合", "団体交渉", "ストライキ",
	"36協定", "安全衛生", "メンタルヘルス", "過労", "長時間労働",
}

// デフォルトの収集日数
const defaultDays = 7
