package report

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/iWorld-y/daily_paper/internal/model"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture %q: %v", s, err)
	}
	return v
}

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Item
	}{
		{
			name: "empty record uses defaults",
			raw:  `{}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-"},
		},
		{
			name: "explicit fields",
			raw: `{"title":"Chiplet-aware NPU","topic":"芯片与硬件架构","score":92,
				"translated_zh":"摘要","abs_url":"https://arxiv.org/abs/2502.00001",
				"pdf_url":"https://arxiv.org/pdf/2502.00001.pdf"}`,
			want: model.Item{
				Title: "Chiplet-aware NPU", Topic: "芯片与硬件架构", Score: "92", Summary: "摘要",
				AbsURL: "https://arxiv.org/abs/2502.00001", PDFURL: "https://arxiv.org/pdf/2502.00001.pdf",
			},
		},
		{
			name: "camel case links",
			raw:  `{"absUrl":"https://example.org/a","pdfUrl":"https://example.org/a.pdf"}`,
			want: model.Item{
				Title: "Untitled", Topic: "未分类", Score: "-",
				AbsURL: "https://example.org/a", PDFURL: "https://example.org/a.pdf",
			},
		},
		{
			name: "links synthesized from arxiv_id",
			raw:  `{"title":"T","arxiv_id":"2301.01234"}`,
			want: model.Item{
				Title: "T", Topic: "未分类", Score: "-",
				AbsURL: "https://arxiv.org/abs/2301.01234", PDFURL: "https://arxiv.org/pdf/2301.01234.pdf",
			},
		},
		{
			name: "links synthesized from prefixed id",
			raw:  `{"id":"arxiv:2502.12345"}`,
			want: model.Item{
				Title: "Untitled", Topic: "未分类", Score: "-",
				AbsURL: "https://arxiv.org/abs/2502.12345", PDFURL: "https://arxiv.org/pdf/2502.12345.pdf",
			},
		},
		{
			name: "pdf link synthesized from explicit abs url",
			raw:  `{"abs_url":"https://arxiv.org/abs/2502.54321v2"}`,
			want: model.Item{
				Title: "Untitled", Topic: "未分类", Score: "-",
				AbsURL: "https://arxiv.org/abs/2502.54321v2", PDFURL: "https://arxiv.org/pdf/2502.54321v2.pdf",
			},
		},
		{
			name: "unrecognised id leaves links empty",
			raw:  `{"id":"paper-42","url":"https://example.org/paper"}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-"},
		},
		{
			name: "score priority chain",
			raw:  `{"score":1,"first_score":2,"second_score":3,"final_score":4}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "4"},
		},
		{
			name: "zero score is kept",
			raw:  `{"final_score":0,"score":9}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "0"},
		},
		{
			name: "null score is skipped",
			raw:  `{"final_score":null,"second_score":7.5}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "7.5"},
		},
		{
			name: "empty string score is kept",
			raw:  `{"first_score":"","score":9}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: ""},
		},
		{
			name: "summary prefers translation and skips empty values",
			raw:  `{"translated_zh":"","summary_zh":null,"abstract_zh":"中文摘要","reasoning":"why"}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-", Summary: "中文摘要"},
		},
		{
			name: "empty title falls back",
			raw:  `{"title":"","topic":""}`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-"},
		},
		{
			name: "non object record",
			raw:  `"just a string"`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-"},
		},
		{
			name: "null record",
			raw:  `null`,
			want: model.Item{Title: "Untitled", Topic: "未分类", Score: "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeItem(decode(t, tt.raw))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NormalizeItem() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFallbackIDOrder(t *testing.T) {
	rec := AsRecord(decode(t, `{"pdf_url":"https://arxiv.org/pdf/1111.11111.pdf","url":"https://arxiv.org/abs/2222.22222","id":42}`))
	assert.Equal(t, "2222.22222", FallbackID(rec))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "92", Stringify(float64(92)))
	assert.Equal(t, "8.25", Stringify(8.25))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "a,1", Stringify([]any{"a", float64(1)}))
	assert.Equal(t, `{"k":"v"}`, Stringify(map[string]any{"k": "v"}))
	assert.Equal(t, "", Stringify(nil))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(float64(0)))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy("x"))
	assert.True(t, Truthy(float64(-1)))
	assert.True(t, Truthy([]any{}))
	assert.True(t, Truthy(map[string]any{}))
}
