package dto

import "time"

// CreateDocumentDTO 创建文档
type CreateDocumentDTO struct {
	Title   string   `json:"title" validate:"max=255"`
	Content string   `json:"content"`
	Tags    []string `json:"tags" validate:"max=50,dive,max=100"`
}

// SearchDocumentDTO 检索文档，query 为空时返回全部
type SearchDocumentDTO struct {
	Query string `form:"query"`
	Mode  string `form:"mode"`
}

type DocumentDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []*TagDTO `json:"tags"`
}

type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
