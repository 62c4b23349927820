// Package search 描述文档检索条件，与存储实现无关。
package search

// EscapeChar LIKE 模式中的转义字符，执行器需配合 ESCAPE 子句使用
const EscapeChar = '!'

// Filter 检索条件，取值为 TitleContains / ContentContains / TagContains / Or
// nil 表示不过滤
type Filter interface {
	// UsesTags 是否需要关联标签表
	UsesTags() bool
}

// TitleContains 标题包含（忽略大小写）
type TitleContains struct {
	Pattern string
}

func (TitleContains) UsesTags() bool { return false }

// ContentContains 正文包含（忽略大小写）
type ContentContains struct {
	Pattern string
}

func (ContentContains) UsesTags() bool { return false }

// TagContains 任一标签名包含（忽略大小写）
type TagContains struct {
	Pattern string
}

func (TagContains) UsesTags() bool { return true }

// Or 任一子条件成立即匹配
type Or struct {
	Filters []Filter
}

func (o Or) UsesTags() bool {
	for _, f := range o.Filters {
		if f != nil && f.UsesTags() {
			return true
		}
	}
	return false
}

// Join 标签关联方式
type Join int

const (
	JoinNone Join = iota
	// JoinInner 无标签的文档不参与匹配
	JoinInner
	// JoinLeft 无标签的文档仍可通过其他字段匹配
	JoinLeft
)

// JoinFor 返回执行 f 所需的关联方式
func JoinFor(f Filter) Join {
	switch v := f.(type) {
	case nil:
		return JoinNone
	case TagContains:
		return JoinInner
	case Or:
		if v.UsesTags() {
			return JoinLeft
		}
	}
	return JoinNone
}

// Distinct 是否需要对结果去重，关联标签表时同一文档可能出现多行
func Distinct(f Filter) bool {
	return JoinFor(f) != JoinNone
}
