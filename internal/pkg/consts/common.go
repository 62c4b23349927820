package consts

const (
	DefaultSearchMode = "all"
)

const (
	DefaultHotKeywordSize = 10
	MaxHotKeywordSize     = 50
	MaxHotKeywordLength   = 64
)
