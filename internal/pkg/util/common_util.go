package util

import "strings"

// CompactStrings 去除空白元素，保留原始顺序与原始内容
func CompactStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NormalizeKeyword 热搜关键字：去空白、小写、按 rune 截断
func NormalizeKeyword(s string, maxLen int) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if maxLen > 0 {
		if r := []rune(s); len(r) > maxLen {
			s = string(r[:maxLen])
		}
	}
	return s
}
