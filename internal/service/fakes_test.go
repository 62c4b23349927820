package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/pkg/kafka"
	"Folio/internal/search"
	"context"
	"time"

	"gorm.io/gorm"
)

type fakeDocumentRepo struct {
	createErr error
	gotTags   []string
	created   []*model.Document
	docs      map[uint64]*model.Document
	getErr    error
	searchErr error
	gotFilter search.Filter
	results   []*model.Document
}

func (f *fakeDocumentRepo) CreateDocument(_ context.Context, doc *model.Document, tagNames []string) error {
	f.gotTags = tagNames
	if f.createErr != nil {
		return f.createErr
	}
	doc.ID = uint64(len(f.created) + 1)
	doc.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range tagNames {
		doc.Tags = append(doc.Tags, &model.Tag{ID: uint64(i + 1), Name: name})
	}
	f.created = append(f.created, doc)
	return nil
}

func (f *fakeDocumentRepo) GetDocument(_ context.Context, id uint64) (*model.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return doc, nil
}

func (f *fakeDocumentRepo) Search(_ context.Context, filter search.Filter) ([]*model.Document, error) {
	f.gotFilter = filter
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.results == nil {
		return []*model.Document{}, nil
	}
	return f.results, nil
}

type fakeTagRepo struct {
	tags []*model.Tag
	err  error
}

func (f *fakeTagRepo) ResolveOrCreate(_ context.Context, _ *gorm.DB, name string) (*model.Tag, error) {
	return &model.Tag{ID: 1, Name: name}, f.err
}

func (f *fakeTagRepo) ListTags(context.Context) ([]*model.Tag, error) {
	return f.tags, f.err
}

type fakePublisher struct {
	events []*kafka.DocumentCreatedEvent
	err    error
}

func (f *fakePublisher) PublishDocumentCreated(_ context.Context, event *kafka.DocumentCreatedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

type fakeHotKeywords struct {
	recorded []string
	err      error
}

func (f *fakeHotKeywords) Record(_ context.Context, keyword string) error {
	f.recorded = append(f.recorded, keyword)
	return f.err
}

func (f *fakeHotKeywords) Top(context.Context, int) ([]*dto.HotKeywordDTO, error) {
	return nil, f.err
}

func (f *fakeHotKeywords) Trim(context.Context, int64) error { return f.err }
