package book_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/mylibrary/internal/application/book"
	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/memory"
)

// fakeCache 详情缓存的内存替身
type fakeCache struct {
	entries map[uint]*book.Book
	sets    int
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uint]*book.Book)}
}

func (c *fakeCache) Get(_ context.Context, id uint) (*book.Book, error) {
	return c.entries[id], nil
}

func (c *fakeCache) Set(_ context.Context, b *book.Book) error {
	copied := *b
	c.entries[b.ID] = &copied
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, id uint) error {
	delete(c.entries, id)
	c.deletes++
	return nil
}

func validInput() appbook.FormInput {
	return appbook.FormInput{
		Authors:         "Doe, J.",
		Title:           "A title",
		PublicationDate: "2024-03-15",
		ISBN:            "1234567890123",
	}
}

// TestCreateBookUseCase 测试创建用例
func TestCreateBookUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建", func(t *testing.T) {
		repo := memory.NewBookRepository()
		uc := appbook.NewCreateBookUseCase(book.NewService(repo))

		result := uc.Execute(ctx, validInput())

		require.Nil(t, result.Errors)
		require.NotNil(t, result.Book)
		assert.NotZero(t, result.Book.ID)
		assert.Equal(t, 1, repo.Count())
	})

	t.Run("字段错误带回表单", func(t *testing.T) {
		repo := memory.NewBookRepository()
		uc := appbook.NewCreateBookUseCase(book.NewService(repo))

		input := validInput()
		input.Authors = "X"
		input.PublicationDate = "not-a-date"
		result := uc.Execute(ctx, input)

		require.NotNil(t, result.Errors)
		assert.Equal(t, book.ReasonTooShort, result.Errors.Fields["authors"])
		assert.Equal(t, book.ReasonInvalidDate, result.Errors.Fields["publication_date"])
		assert.Equal(t, 0, repo.Count())
	})

	t.Run("重复ISBN标记在字段上", func(t *testing.T) {
		repo := memory.NewBookRepository()
		uc := appbook.NewCreateBookUseCase(book.NewService(repo))

		require.Nil(t, uc.Execute(ctx, validInput()).Errors)

		result := uc.Execute(ctx, validInput())

		require.NotNil(t, result.Errors)
		assert.Equal(t, book.ReasonNotUnique, result.Errors.Fields["isbn"])
		assert.Equal(t, 1, repo.Count())
	})
}

// TestGetBookUseCase 测试详情用例的Cache-Aside行为
func TestGetBookUseCase(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()
	svc := book.NewService(repo)
	cache := newFakeCache()
	uc := appbook.NewGetBookUseCase(svc, cache)

	created := appbook.NewCreateBookUseCase(svc).Execute(ctx, validInput())
	require.Nil(t, created.Errors)
	id := created.Book.ID

	t.Run("未命中时查库并回填", func(t *testing.T) {
		got, err := uc.Execute(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "1234567890123", got.ISBN)
		assert.Equal(t, 1, cache.sets, "未命中后应回填缓存")
	})

	t.Run("命中时直接返回缓存", func(t *testing.T) {
		got, err := uc.Execute(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "1234567890123", got.ISBN)
		assert.Equal(t, 1, cache.sets, "命中时不再回填")
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, 9999)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("无缓存时直连数据库", func(t *testing.T) {
		plain := appbook.NewGetBookUseCase(svc, nil)
		got, err := plain.Execute(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "1234567890123", got.ISBN)
	})
}

// TestUpdateBookUseCase 测试更新用例
func TestUpdateBookUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*appbook.UpdateBookUseCase, *fakeCache, uint) {
		repo := memory.NewBookRepository()
		svc := book.NewService(repo)
		cache := newFakeCache()

		created := appbook.NewCreateBookUseCase(svc).Execute(ctx, validInput())
		require.Nil(t, created.Errors)

		return appbook.NewUpdateBookUseCase(svc, cache), cache, created.Book.ID
	}

	t.Run("正常更新并失效缓存", func(t *testing.T) {
		uc, cache, id := setup(t)

		input := validInput()
		input.Title = "Renamed title"
		result, err := uc.Execute(ctx, id, input)

		require.NoError(t, err)
		require.Nil(t, result.Errors)
		assert.Equal(t, "Renamed title", result.Book.Title)
		assert.Equal(t, 1, cache.deletes, "更新成功后应删除旧缓存")
	})

	t.Run("字段错误不落库", func(t *testing.T) {
		uc, cache, id := setup(t)

		input := validInput()
		input.Title = ""
		result, err := uc.Execute(ctx, id, input)

		require.NoError(t, err)
		require.NotNil(t, result.Errors)
		assert.Equal(t, book.ReasonBlank, result.Errors.Fields["title"])
		assert.Zero(t, cache.deletes, "失败不触碰缓存")
	})

	t.Run("目标不存在返回404语义", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.Execute(ctx, 9999, validInput())
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

// TestDeleteBookUseCase 测试删除用例
func TestDeleteBookUseCase(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()
	svc := book.NewService(repo)
	cache := newFakeCache()
	uc := appbook.NewDeleteBookUseCase(svc, cache)

	created := appbook.NewCreateBookUseCase(svc).Execute(ctx, validInput())
	require.Nil(t, created.Errors)
	id := created.Book.ID

	t.Run("正常删除并失效缓存", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, id))
		assert.Equal(t, 0, repo.Count())
		assert.Equal(t, 1, cache.deletes)
	})

	t.Run("删除不存在的图书", func(t *testing.T) {
		err := uc.Execute(ctx, id)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

// TestListBooksUseCase 测试列表用例的分页收敛
func TestListBooksUseCase(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()
	svc := book.NewService(repo)
	createUC := appbook.NewCreateBookUseCase(svc)

	// 100本图书,每页25条,共4页
	for i := 0; i < 100; i++ {
		input := appbook.FormInput{
			Authors:         fmt.Sprintf("Author, %03d", i),
			Title:           fmt.Sprintf("Book %03d", i),
			PublicationDate: "2024-01-01",
			ISBN:            fmt.Sprintf("978%010d", i),
		}
		require.Nil(t, createUC.Execute(ctx, input).Errors)
	}

	uc := appbook.NewListBooksUseCase(svc, 25)

	t.Run("第一页", func(t *testing.T) {
		page, err := uc.Execute(ctx, 1)

		require.NoError(t, err)
		assert.Len(t, page.Items, 25)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 4, page.TotalPages)
		assert.Equal(t, int64(100), page.Total)
		assert.False(t, page.HasPrev)
		assert.True(t, page.HasNext)
		assert.Equal(t, "Book 000", page.Items[0].Title)
	})

	t.Run("末页", func(t *testing.T) {
		page, err := uc.Execute(ctx, 4)

		require.NoError(t, err)
		assert.Len(t, page.Items, 25)
		assert.True(t, page.HasPrev)
		assert.False(t, page.HasNext)
	})

	t.Run("超出末页收敛到末页", func(t *testing.T) {
		page, err := uc.Execute(ctx, 99)

		require.NoError(t, err)
		assert.Equal(t, 4, page.Page)
		assert.Len(t, page.Items, 25)
	})

	t.Run("页码小于1取第一页", func(t *testing.T) {
		page, err := uc.Execute(ctx, 0)

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("空表返回第一页", func(t *testing.T) {
		emptyUC := appbook.NewListBooksUseCase(book.NewService(memory.NewBookRepository()), 25)
		page, err := emptyUC.Execute(ctx, 3)

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 1, page.TotalPages)
	})
}
