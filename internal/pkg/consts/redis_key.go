package consts

const (
	HotKeywordKey = "search:hot:keyword"
	RateLimitKey  = "rate:limit:"
)
