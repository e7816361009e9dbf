package site

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/daily_paper/internal/markdown"
	"github.com/iWorld-y/daily_paper/internal/model"
	"github.com/iWorld-y/daily_paper/internal/tmpl"
)

// GroupByMonth 按 YYYY-MM 分组，分组顺序与组内顺序都沿用 reports 的顺序
func GroupByMonth(reports []model.Report) []model.MonthBucket {
	var buckets []model.MonthBucket
	index := make(map[string]int)
	for _, r := range reports {
		month := r.Month()
		i, ok := index[month]
		if !ok {
			i = len(buckets)
			index[month] = i
			buckets = append(buckets, model.MonthBucket{Month: month})
		}
		buckets[i].Reports = append(buckets[i].Reports, r)
	}
	return buckets
}

// BuildArchive 写出按月归档页 archive.html，侧边栏不高亮任何日期
func (b *Builder) BuildArchive(reports []model.Report) (string, error) {
	sidebar, err := b.renderSidebar(RenderRecentReports(reports, ""))
	if err != nil {
		return "", err
	}

	buckets := GroupByMonth(reports)
	sections := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		sections = append(sections, b.renderMonth(bucket))
	}

	content, err := b.engine.Render(archiveTemplate, tmpl.Vars{
		"archive_label": b.brand.ArchiveLabel,
		"archive_desc":  fmt.Sprintf("共 %d 个月，%d 期", len(buckets), len(reports)),
		"archive_list":  strings.Join(sections, "\n"),
	})
	if err != nil {
		return "", err
	}

	page, err := b.renderBase(b.brand.Name+" - Archive", sidebar, content, tocArchive)
	if err != nil {
		return "", err
	}
	return ArchivePage, b.write(ArchivePage, page)
}

func (b *Builder) renderMonth(bucket model.MonthBucket) string {
	rows := make([]string, 0, len(bucket.Reports))
	for _, r := range bucket.Reports {
		rows = append(rows, fmt.Sprintf(`<li><a class="flex items-center justify-between px-4 py-3 hover:bg-gray-50" href="%s"><span>%s</span><span class="text-xs text-gray-400">%d%s</span></a></li>`,
			markdown.EscapeHTML(r.Filename), markdown.EscapeHTML(r.Date), len(r.Items), b.brand.ItemLabel))
	}

	return fmt.Sprintf(`
        <section class="mb-6">
          <h2 class="px-4 py-2 text-sm font-semibold text-gray-500 bg-gray-50">%s</h2>
          <ul class="divide-y divide-gray-100">%s</ul>
        </section>
      `, markdown.EscapeHTML(monthHeading(bucket.Month)), strings.Join(rows, "\n"))
}

// monthHeading 2026-02 -> 2026年02月
func monthHeading(month string) string {
	year, m, ok := strings.Cut(month, "-")
	if !ok {
		return month
	}
	return fmt.Sprintf("%s年%s月", year, m)
}
