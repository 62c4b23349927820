package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/search"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	docs *fakeDocumentRepo
	tags *fakeTagRepo
	pub  *fakePublisher
	hot  *fakeHotKeywords
	svc  DocumentService
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		docs: &fakeDocumentRepo{docs: map[uint64]*model.Document{}},
		tags: &fakeTagRepo{},
		pub:  &fakePublisher{},
		hot:  &fakeHotKeywords{},
	}
	f.svc = NewDocumentService(f.docs, f.tags, f.pub, f.hot)
	return f
}

func TestCreateDocument_ReturnsIDAndPublishes(t *testing.T) {
	f := newFixture()

	id, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{
		Title:   "Test Title",
		Content: "Test Content",
		Tags:    []string{"Java", "Spring"},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	require.Len(t, f.pub.events, 1)
	ev := f.pub.events[0]
	require.Equal(t, uint64(1), ev.DocumentID)
	require.Equal(t, "Test Title", ev.Title)
	require.Equal(t, []string{"Java", "Spring"}, ev.Tags)
}

func TestCreateDocument_DropsBlankTagsKeepsOthersVerbatim(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{
		Title: "t",
		Tags:  []string{"", "Java", "  ", " Go", "Java"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Java", " Go", "Java"}, f.docs.gotTags)
}

func TestCreateDocument_NilTags(t *testing.T) {
	f := newFixture()

	id, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{Title: "t"})
	require.NoError(t, err)
	require.NotZero(t, id)
	require.Empty(t, f.docs.gotTags)
	require.Empty(t, f.pub.events[0].Tags)
}

func TestCreateDocument_ValidationError(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{
		Title: strings.Repeat("x", 256),
	})
	require.ErrorIs(t, err, ErrParamInvalid)
	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	require.Empty(t, f.docs.created)

	_, err = f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{
		Title: "ok",
		Tags:  []string{strings.Repeat("t", 101)},
	})
	require.ErrorIs(t, err, ErrParamInvalid)

	_, err = f.svc.CreateDocument(context.Background(), nil)
	require.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreateDocument_PersistenceError(t *testing.T) {
	f := newFixture()
	cause := errors.New("duplicate entry")
	f.docs.createErr = cause

	_, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{Title: "t"})
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorIs(t, err, cause)
	require.Empty(t, f.pub.events)
}

func TestCreateDocument_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	f.pub.err = errors.New("broker down")

	id, err := f.svc.CreateDocument(context.Background(), &dto.CreateDocumentDTO{Title: "t"})
	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestSearchDocuments_MapsResults(t *testing.T) {
	f := newFixture()
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	f.docs.results = []*model.Document{
		{ID: 3, Title: "Java Basics", Content: "c", CreatedAt: created, Tags: []*model.Tag{{ID: 9, Name: "Coding"}}},
		{ID: 4, Title: "Untagged", Content: "c", CreatedAt: created},
	}

	out, err := f.svc.SearchDocuments(context.Background(), "Java", "TITLE")
	require.NoError(t, err)
	require.Equal(t, search.TitleContains{Pattern: "%java%"}, f.docs.gotFilter)

	require.Len(t, out, 2)
	require.Equal(t, uint64(3), out[0].ID)
	require.Equal(t, "Java Basics", out[0].Title)
	require.True(t, created.Equal(out[0].CreatedAt))
	require.Equal(t, []*dto.TagDTO{{ID: 9, Name: "Coding"}}, out[0].Tags)
	require.NotNil(t, out[1].Tags)
	require.Empty(t, out[1].Tags)

	require.Equal(t, []string{"Java"}, f.hot.recorded)
}

func TestSearchDocuments_BlankQueryIsUnfiltered(t *testing.T) {
	f := newFixture()

	out, err := f.svc.SearchDocuments(context.Background(), "  ", "tag")
	require.NoError(t, err)
	require.Nil(t, f.docs.gotFilter)
	require.NotNil(t, out)
	require.Empty(t, out)
	require.Empty(t, f.hot.recorded)
}

func TestSearchDocuments_UnknownModeUsesAll(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SearchDocuments(context.Background(), "spring", "bogus")
	require.NoError(t, err)
	require.Equal(t, search.BuildFilter("spring", "all"), f.docs.gotFilter)
}

func TestSearchDocuments_StorageError(t *testing.T) {
	f := newFixture()
	f.docs.searchErr = errors.New("connection reset")

	_, err := f.svc.SearchDocuments(context.Background(), "x", "all")
	require.ErrorIs(t, err, UnExpectedError)
}

func TestSearchDocuments_HotKeywordFailureIgnored(t *testing.T) {
	f := newFixture()
	f.hot.err = errors.New("redis down")

	out, err := f.svc.SearchDocuments(context.Background(), "x", "all")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGetDocument(t *testing.T) {
	f := newFixture()
	f.docs.docs[5] = &model.Document{ID: 5, Title: "five", Tags: []*model.Tag{{ID: 1, Name: "a"}}}

	got, err := f.svc.GetDocument(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "five", got.Title)
	require.Len(t, got.Tags, 1)

	_, err = f.svc.GetDocument(context.Background(), 6)
	require.ErrorIs(t, err, ErrDocumentNotFound)

	f.docs.getErr = errors.New("boom")
	_, err = f.svc.GetDocument(context.Background(), 5)
	require.ErrorIs(t, err, UnExpectedError)
}

func TestListTags(t *testing.T) {
	f := newFixture()
	f.tags.tags = []*model.Tag{{ID: 1, Name: "Go"}, {ID: 2, Name: "Java"}}

	out, err := f.svc.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, []*dto.TagDTO{{ID: 1, Name: "Go"}, {ID: 2, Name: "Java"}}, out)

	f.tags.tags = nil
	out, err = f.svc.ListTags(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Empty(t, out)
}

func TestLookup(t *testing.T) {
	sentinel, code, ok := Lookup(ErrDocumentNotFound)
	require.True(t, ok)
	require.Equal(t, ErrDocumentNotFound, sentinel)
	require.Equal(t, NotFound, code)

	sentinel, code, ok = Lookup(errors.Join(ErrPersistence, errors.New("cause")))
	require.True(t, ok)
	require.Equal(t, ErrPersistence, sentinel)
	require.Equal(t, InternalServerError, code)

	_, _, ok = Lookup(errors.New("other"))
	require.False(t, ok)
}
