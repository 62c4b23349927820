package dto

type HotKeywordQueryDTO struct {
	Size int `form:"size" validate:"min=0,max=50"`
}

type HotKeywordDTO struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}
