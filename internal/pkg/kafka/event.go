package kafka

import "time"

// DocumentCreatedEvent 文档创建成功后投递
type DocumentCreatedEvent struct {
	DocumentID uint64    `json:"document_id"`
	Title      string    `json:"title"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}
