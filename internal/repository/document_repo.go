package repository

import (
	"Folio/internal/model"
	"Folio/internal/search"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentRepo interface {
	// CreateDocument 在同一事务内解析标签并写入文档，成功后回填 doc.ID 与 doc.Tags
	CreateDocument(ctx context.Context, doc *model.Document, tagNames []string) error
	GetDocument(ctx context.Context, id uint64) (*model.Document, error)
	// Search 按条件检索，f 为 nil 时返回全部文档；结果按文档去重，顺序不保证
	Search(ctx context.Context, f search.Filter) ([]*model.Document, error)
}

type documentRepoImpl struct {
	db      *gorm.DB
	tagRepo TagRepo
}

func NewDocumentRepository(db *gorm.DB, tagRepo TagRepo) DocumentRepo {
	return &documentRepoImpl{
		db:      db,
		tagRepo: tagRepo,
	}
}

func (s *documentRepoImpl) CreateDocument(ctx context.Context, doc *model.Document, tagNames []string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := make([]*model.Tag, 0, len(tagNames))
		seen := make(map[uint64]struct{}, len(tagNames))
		for _, name := range tagNames {
			tag, err := s.tagRepo.ResolveOrCreate(ctx, tx, name)
			if err != nil {
				return err
			}
			// 同一标签只保留第一次出现
			if _, ok := seen[tag.ID]; ok {
				continue
			}
			seen[tag.ID] = struct{}{}
			tags = append(tags, tag)
		}

		doc.ID = 0
		doc.CreatedAt = time.Now()
		doc.Tags = nil
		if err := tx.Omit(clause.Associations).Create(doc).Error; err != nil {
			return err
		}

		if len(tags) > 0 {
			links := make([]*model.DocumentTag, 0, len(tags))
			for _, tag := range tags {
				links = append(links, &model.DocumentTag{DocumentID: doc.ID, TagID: tag.ID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		doc.Tags = tags
		return nil
	})
	if err != nil {
		// 事务已回滚，不回填未提交的主键与标签
		doc.ID = 0
		doc.Tags = nil
		return err
	}
	return nil
}

func (s *documentRepoImpl) GetDocument(ctx context.Context, id uint64) (*model.Document, error) {
	var doc model.Document
	err := s.db.WithContext(ctx).Preload("Tags").First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *documentRepoImpl) Search(ctx context.Context, f search.Filter) ([]*model.Document, error) {
	docs := make([]*model.Document, 0)
	conn := s.db.WithContext(ctx)

	if f == nil {
		err := conn.Preload("Tags").Order("documents.id").Find(&docs).Error
		if err != nil {
			return nil, err
		}
		return docs, nil
	}

	where, args, err := compileFilter(f)
	if err != nil {
		return nil, err
	}

	query := conn.Model(&model.Document{})
	switch search.JoinFor(f) {
	case search.JoinInner:
		query = query.
			Joins("INNER JOIN document_tags ON document_tags.document_id = documents.id").
			Joins("INNER JOIN tags ON tags.id = document_tags.tag_id")
	case search.JoinLeft:
		query = query.
			Joins("LEFT JOIN document_tags ON document_tags.document_id = documents.id").
			Joins("LEFT JOIN tags ON tags.id = document_tags.tag_id")
	}
	if search.Distinct(f) {
		query = query.Distinct("documents.id")
	}

	var ids []uint64
	if err = query.Where(where, args...).Pluck("documents.id", &ids).Error; err != nil {
		return nil, err
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return docs, nil
	}

	// 显式加载完整标签列表，而不是只加载命中的标签
	err = conn.Preload("Tags").Where("documents.id IN ?", ids).Order("documents.id").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// compileFilter 将检索条件翻译为 WHERE 子句
func compileFilter(f search.Filter) (string, []any, error) {
	like := "LIKE ? ESCAPE '" + string(search.EscapeChar) + "'"

	switch v := f.(type) {
	case search.TitleContains:
		return "LOWER(documents.title) " + like, []any{v.Pattern}, nil
	case search.ContentContains:
		return "LOWER(documents.content) " + like, []any{v.Pattern}, nil
	case search.TagContains:
		return "LOWER(tags.name) " + like, []any{v.Pattern}, nil
	case search.Or:
		if len(v.Filters) == 0 {
			return "", nil, fmt.Errorf("empty OR filter")
		}
		parts := make([]string, 0, len(v.Filters))
		var args []any
		for _, sub := range v.Filters {
			w, a, err := compileFilter(sub)
			if err != nil {
				return "", nil, err
			}
			parts = append(parts, "("+w+")")
			args = append(args, a...)
		}
		return strings.Join(parts, " OR "), args, nil
	default:
		return "", nil, fmt.Errorf("unsupported filter type %T", f)
	}
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
