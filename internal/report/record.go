package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record 一条原始 JSON 记录，字段集合不固定
type Record map[string]any

// AsRecord 将任意 JSON 值视为记录，非对象一律视为空记录
func AsRecord(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// Get 返回字段值，字段缺失或为 null 时 ok 为 false
func (r Record) Get(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// FirstPresent 按顺序返回第一个存在且非 null 的字段值。
// 0、false 和空字符串都算存在。
func (r Record) FirstPresent(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r.Get(key); ok {
			return v, true
		}
	}
	return nil, false
}

// FirstTruthy 按顺序返回第一个非空值 (见 Truthy)
func (r Record) FirstTruthy(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r.Get(key); ok && Truthy(v) {
			return v, true
		}
	}
	return nil, false
}

// StringOr 返回第一个非空字段的文本形式，都为空时返回 def
func (r Record) StringOr(def string, keys ...string) string {
	if v, ok := r.FirstTruthy(keys...); ok {
		return Stringify(v)
	}
	return def
}

// Truthy 判断 JSON 值是否"有内容": null、false、0、NaN 和空字符串为假，其余为真
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}

// Stringify 将 JSON 值转换为展示文本
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case []any:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = Stringify(e)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
