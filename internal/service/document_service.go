package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/pkg/kafka"
	"Folio/internal/pkg/metrics"
	"Folio/internal/pkg/util"
	"Folio/internal/repository"
	"Folio/internal/search"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type DocumentService interface {
	CreateDocument(ctx context.Context, req *dto.CreateDocumentDTO) (uint64, error)
	SearchDocuments(ctx context.Context, query string, mode string) ([]*dto.DocumentDTO, error)
	GetDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
}

type documentServiceImpl struct {
	documentRepo  repository.DocumentRepo
	tagRepo       repository.TagRepo
	publisher     kafka.DocumentPublisher
	hotKeywordSvc HotKeywordService
}

func NewDocumentService(
	documentRepo repository.DocumentRepo,
	tagRepo repository.TagRepo,
	publisher kafka.DocumentPublisher,
	hotKeywordSvc HotKeywordService,
) DocumentService {
	return &documentServiceImpl{
		documentRepo:  documentRepo,
		tagRepo:       tagRepo,
		publisher:     publisher,
		hotKeywordSvc: hotKeywordSvc,
	}
}

// CreateDocument 创建文档，空白标签在进入事务前剔除
func (s *documentServiceImpl) CreateDocument(ctx context.Context, req *dto.CreateDocumentDTO) (uint64, error) {
	if req == nil {
		return 0, ErrParamInvalid
	}
	if err := util.ValidateDTO(req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParamInvalid, err)
	}

	doc := &model.Document{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.documentRepo.CreateDocument(ctx, doc, util.CompactStrings(req.Tags)); err != nil {
		metrics.DocumentsCreated.WithLabelValues("error").Inc()
		log.ErrorContext(ctx, "create document failed", "title", req.Title, "err", err)
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	metrics.DocumentsCreated.WithLabelValues("ok").Inc()

	s.publishCreated(ctx, doc)

	return doc.ID, nil
}

func (s *documentServiceImpl) SearchDocuments(ctx context.Context, query string, mode string) ([]*dto.DocumentDTO, error) {
	filter := search.BuildFilter(query, mode)
	metrics.Searches.WithLabelValues(string(search.ParseMode(mode))).Inc()

	docs, err := s.documentRepo.Search(ctx, filter)
	if err != nil {
		log.ErrorContext(ctx, "search documents failed", "query", query, "mode", mode, "err", err)
		return nil, UnExpectedError
	}
	metrics.SearchResults.Observe(float64(len(docs)))

	if filter != nil && s.hotKeywordSvc != nil {
		if err = s.hotKeywordSvc.Record(ctx, query); err != nil {
			log.WarnContext(ctx, "record hot keyword failed", "query", query, "err", err)
		}
	}

	out := make([]*dto.DocumentDTO, 0, len(docs))
	for _, doc := range docs {
		item, err := toDocumentDTO(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *documentServiceImpl) GetDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error) {
	doc, err := s.documentRepo.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		log.ErrorContext(ctx, "get document failed", "document_id", id, "err", err)
		return nil, UnExpectedError
	}
	return toDocumentDTO(doc)
}

func (s *documentServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list tags failed", "err", err)
		return nil, UnExpectedError
	}

	out := make([]*dto.TagDTO, 0, len(tags))
	if len(tags) == 0 {
		return out, nil
	}
	if err = copier.Copy(&out, &tags); err != nil {
		return nil, err
	}
	return out, nil
}

// publishCreated 事件投递失败不影响已提交的文档
func (s *documentServiceImpl) publishCreated(ctx context.Context, doc *model.Document) {
	if s.publisher == nil {
		return
	}
	names := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		names = append(names, tag.Name)
	}
	event := &kafka.DocumentCreatedEvent{
		DocumentID: doc.ID,
		Title:      doc.Title,
		Tags:       names,
		CreatedAt:  doc.CreatedAt,
	}
	if err := s.publisher.PublishDocumentCreated(ctx, event); err != nil {
		log.WarnContext(ctx, "publish document event failed", "document_id", doc.ID, "err", err)
	}
}

func toDocumentDTO(doc *model.Document) (*dto.DocumentDTO, error) {
	out := &dto.DocumentDTO{}
	if err := copier.CopyWithOption(out, doc, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if out.Tags == nil {
		out.Tags = make([]*dto.TagDTO, 0)
	}
	return out, nil
}
