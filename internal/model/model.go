package model

// Item 单条归一化后的条目
type Item struct {
	Title   string
	Topic   string
	Score   string // 数值或文本评分，缺省为 "-"
	Summary string // 受限 Markdown 文本，可能为空
	AbsURL  string
	PDFURL  string
}

// Report 某一天的日报
type Report struct {
	Date     string // YYYY-MM-DD
	Items    []Item
	Filename string // 输出页面文件名，<Date>.html
}

// Month 返回日报所属月份 (YYYY-MM)
func (r Report) Month() string {
	if len(r.Date) < 7 {
		return r.Date
	}
	return r.Date[:7]
}

// MonthBucket 同一月份的日报
type MonthBucket struct {
	Month   string // YYYY-MM
	Reports []Report
}
