package model

type DocumentTag struct {
	DocumentID uint64 `gorm:"primaryKey" json:"documentId"`
	TagID      uint64 `gorm:"primaryKey;index:idx_document_tags_tag_id" json:"tagId"`
}

func (DocumentTag) TableName() string {
	return "document_tags"
}
