package search

import "strings"

// Mode 检索范围
type Mode string

const (
	ModeTitle   Mode = "title"
	ModeContent Mode = "content"
	ModeTag     Mode = "tag"
	ModeAll     Mode = "all"
)

// ParseMode 忽略大小写解析，未知值按 all 处理
func ParseMode(raw string) Mode {
	switch m := Mode(strings.ToLower(raw)); m {
	case ModeTitle, ModeContent, ModeTag:
		return m
	default:
		return ModeAll
	}
}
