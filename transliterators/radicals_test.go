package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadicals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"kangxi radicals sequence", "⼀⼆⼃⼄⼅⼆⼇⼈⼉⼊", "一二丿乙亅二亠人儿入"},
		{"cjk radicals supplement sequence", "⺀⺁⺂⺃⺄⺅⺆", "冫厂乛乚乙亻冂"},
		{"hand radical variants", "⺘⼿", "扌手"},
		{"water radical variants", "⺡⽔", "氵水"},
		{"grass radical variants", "⺾⺿⻀⾋", "艹艹艹艸"},
		{"simplified radicals", "⻈⻉⻋⻐⻢⻥⻦", "讠贝车钅马鱼鸟"},
		{"radicals in context", "⼭の⽊を⽔で育てる", "山の木を水で育てる"},
		{"unmapped characters pass through", "hello 漢字", "hello 漢字"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "radicals", nil, tt.input))
		})
	}
}
