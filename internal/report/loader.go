package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/daily_paper/internal/model"
)

var reportFile = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.json$`)

// Loader 从目录中读取按日期命名的 JSON 日报
type Loader struct {
	dir string
	log logrus.FieldLogger
}

// NewLoader 创建日报加载器
func NewLoader(dir string, log logrus.FieldLogger) *Loader {
	return &Loader{dir: dir, log: log}
}

// ListFiles 返回目录下所有 YYYY-MM-DD.json 文件名，按日期从新到旧排序。
// 目录不存在时返回空列表。
func (l *Loader) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list reports in %s: %w", l.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !reportFile.MatchString(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}

	// 定宽日期，字典序倒序即时间倒序
	slices.Sort(files)
	slices.Reverse(files)
	return files, nil
}

// Load 读取并解析全部日报，任何一个文件不是合法 JSON 都会返回错误
func (l *Loader) Load() ([]model.Report, error) {
	files, err := l.ListFiles()
	if err != nil {
		return nil, err
	}

	reports := make([]model.Report, 0, len(files))
	for _, file := range files {
		r, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		l.log.Debugf("已加载日报 %s (%d 条)", file, len(r.Items))
		reports = append(reports, r)
	}
	return reports, nil
}

func (l *Loader) loadFile(file string) (model.Report, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, file))
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to read report %s: %w", file, err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Report{}, fmt.Errorf("failed to parse report %s: %w", file, err)
	}

	return ParseReport(strings.TrimSuffix(file, ".json"), payload), nil
}

// ParseReport 根据已解码的 JSON 构造日报。
// payload 中的 date 字段优先于文件名中的日期。
func ParseReport(fileDate string, payload any) model.Report {
	date := AsRecord(payload).StringOr(fileDate, "date")

	raw := PickItems(payload)
	items := make([]model.Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeItem(r))
	}

	return model.Report{
		Date:     date,
		Items:    items,
		Filename: date + ".html",
	}
}

// PickItems 依次尝试: 顶层数组、items 数组、data.items 数组
func PickItems(payload any) []any {
	if list, ok := payload.([]any); ok {
		return list
	}

	rec := AsRecord(payload)
	if list, ok := rec["items"].([]any); ok {
		return list
	}
	if list, ok := AsRecord(rec["data"])["items"].([]any); ok {
		return list
	}
	return nil
}
