package report

import (
	"github.com/iWorld-y/daily_paper/internal/arxiv"
	"github.com/iWorld-y/daily_paper/internal/model"
)

const (
	defaultTitle = "Untitled"
	defaultTopic = "未分类"
	defaultScore = "-"
)

// 各字段的候选键，靠前的优先
var (
	idKeys      = []string{"arxiv_id", "id", "url", "abs_url", "pdf_url"}
	absKeys     = []string{"abs_url", "absUrl"}
	pdfKeys     = []string{"pdf_url", "pdfUrl"}
	titleKeys   = []string{"title"}
	topicKeys   = []string{"topic"}
	scoreKeys   = []string{"final_score", "second_score", "first_score", "score"}
	summaryKeys = []string{"translated_zh", "summary_zh", "abstract_zh", "reasoning"}
)

// NormalizeItem 将任意形状的原始条目映射为 model.Item，不会失败
func NormalizeItem(raw any) model.Item {
	rec := AsRecord(raw)

	item := model.Item{
		Title:   rec.StringOr(defaultTitle, titleKeys...),
		Topic:   rec.StringOr(defaultTopic, topicKeys...),
		Score:   defaultScore,
		Summary: rec.StringOr("", summaryKeys...),
		AbsURL:  rec.StringOr("", absKeys...),
		PDFURL:  rec.StringOr("", pdfKeys...),
	}
	if v, ok := rec.FirstPresent(scoreKeys...); ok {
		item.Score = Stringify(v)
	}

	if item.AbsURL == "" || item.PDFURL == "" {
		if id := FallbackID(rec); id != "" {
			if item.AbsURL == "" {
				item.AbsURL = arxiv.AbsURL(id)
			}
			if item.PDFURL == "" {
				item.PDFURL = arxiv.PDFURL(id)
			}
		}
	}

	return item
}

// FallbackID 依次从 arxiv_id、id、url、abs_url、pdf_url 中提取 arXiv 编号
func FallbackID(rec Record) string {
	for _, key := range idKeys {
		if id := arxiv.ExtractID(rec[key]); id != "" {
			return id
		}
	}
	return ""
}
