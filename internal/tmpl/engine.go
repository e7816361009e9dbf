// Package tmpl fills {{name}} placeholders in text templates.
//
// Substitution is literal and single pass: values are inserted as-is and are
// never scanned for placeholders themselves, and placeholders without a value
// are left untouched. Callers are responsible for escaping values.
package tmpl

import (
	"fmt"
	"io/fs"
	"strings"
)

// Vars 占位符名到替换值的映射，值通过 fmt 转为文本
type Vars map[string]any

// Engine 从 fs.FS 中读取模板并做占位符替换
type Engine struct {
	fsys fs.FS
}

// New 创建模板引擎
func New(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys}
}

// Render 读取名为 name 的模板并替换其中的占位符。
// 模板不存在时返回的错误满足 errors.Is(err, fs.ErrNotExist)。
func (e *Engine) Render(name string, vars Vars) (string, error) {
	data, err := fs.ReadFile(e.fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return Substitute(string(data), vars), nil
}

// Substitute 对 text 做一次性占位符替换
func Substitute(text string, vars Vars) string {
	if len(vars) == 0 {
		return text
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
