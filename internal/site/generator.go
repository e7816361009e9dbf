package site

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/daily_paper/internal/config"
	"github.com/iWorld-y/daily_paper/internal/report"
	"github.com/iWorld-y/daily_paper/internal/tmpl"
	"github.com/iWorld-y/daily_paper/web"
)

// Result 一次生成的结果
type Result struct {
	SiteDir string
	Pages   []string // 按写出顺序；index.html 与最新日期页都会出现
}

// Generator 读取 JSON 日报并生成完整站点，每次运行都全量重建
type Generator struct {
	cfg     *config.Config
	brand   config.Brand
	loader  *report.Loader
	builder *Builder
	log     logrus.FieldLogger
}

// NewGenerator 根据配置创建站点生成器
func NewGenerator(cfg *config.Config, log logrus.FieldLogger) *Generator {
	brand := config.BrandFor(config.ParseMode(cfg.Mode))

	var templates fs.FS = web.Templates()
	if cfg.TemplatesDir != "" {
		templates = os.DirFS(cfg.TemplatesDir)
	}

	return &Generator{
		cfg:     cfg,
		brand:   brand,
		loader:  report.NewLoader(cfg.OutputDir, log),
		builder: NewBuilder(tmpl.New(templates), brand, cfg.SiteDir, log),
		log:     log,
	}
}

// Run 生成站点。JSON 解析失败、模板缺失或写文件失败时返回错误，已写出的页面不做回滚。
func (g *Generator) Run() (*Result, error) {
	if err := os.MkdirAll(g.cfg.SiteDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create site directory %s: %w", g.cfg.SiteDir, err)
	}

	reports, err := g.loader.Load()
	if err != nil {
		return nil, err
	}
	g.log.Infof("共加载 %d 期日报 (%s)", len(reports), g.brand.Name)

	res := &Result{SiteDir: g.cfg.SiteDir}
	emit := func(name string, err error) error {
		if err != nil {
			return err
		}
		res.Pages = append(res.Pages, name)
		return nil
	}

	if len(reports) == 0 {
		notice := fmt.Sprintf("No JSON report found in %s/.", filepath.Base(g.cfg.OutputDir))
		if err := emit(g.builder.BuildEmptyIndex(notice)); err != nil {
			return nil, err
		}
		g.log.Warnf("未找到任何日报，仅生成空白首页")
		return res, nil
	}

	if err := emit(g.builder.BuildPage(reports[0], reports, true)); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if err := emit(g.builder.BuildPage(r, reports, false)); err != nil {
			return nil, err
		}
	}
	if err := emit(g.builder.BuildArchive(reports)); err != nil {
		return nil, err
	}

	g.log.Infof("站点生成完毕: %s (%d 个页面)", g.cfg.SiteDir, len(res.Pages))
	return res, nil
}
