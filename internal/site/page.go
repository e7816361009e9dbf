package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/daily_paper/internal/config"
	"github.com/iWorld-y/daily_paper/internal/markdown"
	"github.com/iWorld-y/daily_paper/internal/model"
	"github.com/iWorld-y/daily_paper/internal/tmpl"
)

// 模板文件名
const (
	baseTemplate     = "base.html"
	sidebarTemplate  = "sidebar.html"
	homepageTemplate = "homepage.html"
	archiveTemplate  = "archive.html"
)

// 输出文件名
const (
	IndexPage   = "index.html"
	ArchivePage = "archive.html"
)

const (
	latestBadge  = `<span class="text-xs px-2 py-1 rounded-full bg-green-100 text-green-700">latest</span>`
	tocNA        = `<p class="text-xs text-gray-400">N/A</p>`
	tocArchive   = `<p class="text-xs text-gray-400">Archive</p>`
	noItemsBlock = `<div class="rounded-lg border border-dashed border-gray-300 p-6 text-sm text-gray-500">%s</div>`
)

// Builder 组装 base、sidebar、content 三层模板并写出页面
type Builder struct {
	engine  *tmpl.Engine
	brand   config.Brand
	siteDir string
	log     logrus.FieldLogger
}

// NewBuilder 创建页面构建器
func NewBuilder(engine *tmpl.Engine, brand config.Brand, siteDir string, log logrus.FieldLogger) *Builder {
	return &Builder{
		engine:  engine,
		brand:   brand,
		siteDir: siteDir,
		log:     log,
	}
}

// BuildPage 写出单日页面；isIndex 为 true 时写为 index.html 并带 latest 标记
func (b *Builder) BuildPage(report model.Report, reports []model.Report, isIndex bool) (string, error) {
	sidebar, err := b.renderSidebar(RenderRecentReports(reports, report.Date))
	if err != nil {
		return "", err
	}

	badge := ""
	if isIndex {
		badge = latestBadge
	}
	content, err := b.engine.Render(homepageTemplate, tmpl.Vars{
		"date":           markdown.EscapeHTML(report.Date),
		"item_count":     len(report.Items),
		"item_label":     b.brand.ItemLabel,
		"latest_badge":   badge,
		"report_content": RenderItems(report.Items),
	})
	if err != nil {
		return "", err
	}

	page, err := b.renderBase(fmt.Sprintf("%s - %s", b.brand.Name, report.Date), sidebar, content, tocNA)
	if err != nil {
		return "", err
	}

	name := report.Filename
	if isIndex {
		name = IndexPage
	}
	return name, b.write(name, page)
}

// BuildEmptyIndex 没有任何日报时写出仅含提示信息的 index.html
func (b *Builder) BuildEmptyIndex(notice string) (string, error) {
	sidebar, err := b.renderSidebar("")
	if err != nil {
		return "", err
	}

	content, err := b.engine.Render(homepageTemplate, tmpl.Vars{
		"date":           "No data",
		"item_count":     0,
		"item_label":     b.brand.ItemLabel,
		"latest_badge":   "",
		"report_content": fmt.Sprintf(noItemsBlock, markdown.EscapeHTML(notice)),
	})
	if err != nil {
		return "", err
	}

	page, err := b.renderBase(b.brand.Name, sidebar, content, tocNA)
	if err != nil {
		return "", err
	}
	return IndexPage, b.write(IndexPage, page)
}

// RenderRecentReports 渲染侧边栏日期列表，current 对应的日期不带链接
func RenderRecentReports(reports []model.Report, current string) string {
	rows := make([]string, 0, len(reports))
	for _, r := range reports {
		date := markdown.EscapeHTML(r.Date)
		if current != "" && r.Date == current {
			rows = append(rows, fmt.Sprintf(`<li><span class="block px-3 py-2 rounded-lg bg-indigo-50 text-indigo-700 font-medium">%s</span></li>`, date))
			continue
		}
		rows = append(rows, fmt.Sprintf(`<li><a class="block px-3 py-2 rounded-lg text-gray-600 hover:bg-gray-100" href="%s">%s</a></li>`,
			markdown.EscapeHTML(r.Filename), date))
	}
	return strings.Join(rows, "\n")
}

// RenderItems 渲染条目卡片列表
func RenderItems(items []model.Item) string {
	if len(items) == 0 {
		return fmt.Sprintf(noItemsBlock, "No items for this date.")
	}

	cards := make([]string, 0, len(items))
	for i, item := range items {
		var links []string
		if item.AbsURL != "" {
			links = append(links, renderLink(item.AbsURL, "abs"))
		}
		if item.PDFURL != "" {
			links = append(links, renderLink(item.PDFURL, "pdf"))
		}

		cards = append(cards, fmt.Sprintf(`
        <article class="border border-gray-200 rounded-xl p-4 bg-white">
          <h2 class="text-lg font-semibold text-gray-900">%d. %s</h2>
          <p class="text-sm text-gray-500 mt-1">主题: %s | 评分: %s</p>
          <div class="text-sm text-gray-700 mt-3 leading-6">%s</div>
          <p class="text-sm mt-3">%s</p>
        </article>
      `,
			i+1,
			markdown.EscapeHTML(item.Title),
			markdown.EscapeHTML(item.Topic),
			markdown.EscapeHTML(item.Score),
			markdown.RenderSummary(item.Summary),
			strings.Join(links, " | "),
		))
	}
	return strings.Join(cards, "\n")
}

func renderLink(href, label string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="text-indigo-600 hover:text-indigo-800">%s</a>`,
		markdown.EscapeHTML(href), label)
}

func (b *Builder) renderSidebar(recent string) (string, error) {
	return b.engine.Render(sidebarTemplate, tmpl.Vars{
		"brand":          b.brand.Name,
		"brand_zh":       b.brand.NameZh,
		"recent_reports": recent,
	})
}

func (b *Builder) renderBase(title, sidebar, content, toc string) (string, error) {
	return b.engine.Render(baseTemplate, tmpl.Vars{
		"title":       markdown.EscapeHTML(title),
		"sidebar":     sidebar,
		"content":     content,
		"toc_content": toc,
	})
}

func (b *Builder) write(name, page string) error {
	path := filepath.Join(b.siteDir, name)
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", path, err)
	}
	b.log.Debugf("已写出页面 %s", path)
	return nil
}
