package search

import "strings"

// BuildFilter 根据关键字与检索范围构造条件。
// 关键字为空或全是空白时返回 nil，即不过滤。
func BuildFilter(queryText string, mode string) Filter {
	if strings.TrimSpace(queryText) == "" {
		return nil
	}

	pattern := ContainsPattern(queryText)

	switch ParseMode(mode) {
	case ModeTitle:
		return TitleContains{Pattern: pattern}
	case ModeContent:
		return ContentContains{Pattern: pattern}
	case ModeTag:
		return TagContains{Pattern: pattern}
	default:
		return Or{Filters: []Filter{
			TitleContains{Pattern: pattern},
			ContentContains{Pattern: pattern},
			TagContains{Pattern: pattern},
		}}
	}
}

// ContainsPattern 生成小写的 "%text%" 模式，% _ 及转义符本身按字面匹配
func ContainsPattern(queryText string) string {
	var b strings.Builder
	lower := strings.ToLower(queryText)
	b.Grow(len(lower) + 2)
	b.WriteByte('%')
	for _, r := range lower {
		switch r {
		case '%', '_', EscapeChar:
			b.WriteRune(EscapeChar)
		}
		b.WriteRune(r)
	}
	b.WriteByte('%')
	return b.String()
}
