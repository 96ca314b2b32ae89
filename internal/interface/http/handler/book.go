package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbook "github.com/xiebiao/mylibrary/internal/application/book"
	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/internal/interface/http/dto"
	"github.com/xiebiao/mylibrary/pkg/logger"
	"github.com/xiebiao/mylibrary/pkg/response"
)

// FlashStore 跨重定向的一次性提示存储(Redis实现注入)
type FlashStore interface {
	Push(ctx context.Context, sessionID, message string) error
	PopAll(ctx context.Context, sessionID string) ([]string, error)
}

// flashCookie 匿名会话Cookie,只用于关联flash消息
const (
	flashCookie       = "mylibrary_session"
	flashCookieMaxAge = 7 * 24 * 3600
)

// BookHandler 图书页面处理器
// 设计说明：
// 1. 处理器只做三件事:绑定表单、调用用例、选择出口(渲染/重定向/404)
// 2. 所有可纠正的表单错误都以200重新渲染表单页,只有成功才302
type BookHandler struct {
	listUC   *appbook.ListBooksUseCase
	getUC    *appbook.GetBookUseCase
	createUC *appbook.CreateBookUseCase
	updateUC *appbook.UpdateBookUseCase
	deleteUC *appbook.DeleteBookUseCase
	flash    FlashStore
}

// NewBookHandler 创建图书处理器
// flash可以为nil(测试或未部署Redis时跳过提示)
func NewBookHandler(
	listUC *appbook.ListBooksUseCase,
	getUC *appbook.GetBookUseCase,
	createUC *appbook.CreateBookUseCase,
	updateUC *appbook.UpdateBookUseCase,
	deleteUC *appbook.DeleteBookUseCase,
	flash FlashStore,
) *BookHandler {
	return &BookHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		flash:    flash,
	}
}

// ListBooks 图书列表页
// GET /books/?page=N
func (h *BookHandler) ListBooks(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	pageData, err := h.listUC.Execute(c.Request.Context(), page)
	if err != nil {
		logger.Error("查询图书列表失败", err)
		response.Error(c, "图书列表暂时无法访问,请稍后重试")
		return
	}

	response.HTML(c, "books.html", gin.H{
		"Page":    pageData,
		"Flashes": h.popFlashes(c),
	})
}

// GetBook 图书详情页
// GET /books/:id/
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.renderFetchError(c, id, err)
		return
	}

	response.HTML(c, "get_book.html", gin.H{
		"Book": dto.NewBookView(b),
	})
}

// CreateBookPage 创建图书表单页
// GET /create_book/
func (h *BookHandler) CreateBookPage(c *gin.Context) {
	response.HTML(c, "create_book.html", gin.H{
		"Form": dto.BookForm{},
	})
}

// CreateBook 提交创建
// POST /create_book/
func (h *BookHandler) CreateBook(c *gin.Context) {
	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("解析创建图书表单失败", err)
		response.HTML(c, "create_book.html", gin.H{
			"Form":     form,
			"NonField": "表单数据无法解析,请重新提交",
		})
		return
	}

	result := h.createUC.Execute(c.Request.Context(), form.ToInput())
	if result.Errors != nil {
		response.HTML(c, "create_book.html", gin.H{
			"Form":     form,
			"Errors":   dto.FieldMessages(result.Errors.Fields),
			"NonField": result.Errors.NonField,
		})
		return
	}

	response.Redirect(c, "/books/")
}

// UpdateBookPage 更新图书表单页(用当前记录回填)
// GET /update_book/:id/
func (h *BookHandler) UpdateBookPage(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.renderFetchError(c, id, err)
		return
	}

	response.HTML(c, "update_book.html", gin.H{
		"ID":   id,
		"Form": dto.FormFromBook(b),
	})
}

// UpdateBook 提交更新
// POST /update_book/:id/
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	var form dto.BookForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("解析更新图书表单失败", err)
		response.HTML(c, "update_book.html", gin.H{
			"ID":       id,
			"Form":     form,
			"NonField": "表单数据无法解析,请重新提交",
		})
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), id, form.ToInput())
	if err != nil {
		h.renderFetchError(c, id, err)
		return
	}
	if result.Errors != nil {
		response.HTML(c, "update_book.html", gin.H{
			"ID":       id,
			"Form":     form,
			"Errors":   dto.FieldMessages(result.Errors.Fields),
			"NonField": result.Errors.NonField,
		})
		return
	}

	h.pushFlash(c, "图书记录已更新为: "+result.Book.String())
	response.Redirect(c, "/books/")
}

// DeleteBookPage 删除确认页
// GET /delete_book/:id/
func (h *BookHandler) DeleteBookPage(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	b, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		h.renderFetchError(c, id, err)
		return
	}

	response.HTML(c, "delete_book.html", gin.H{
		"Book": dto.NewBookView(b),
	})
}

// DeleteBook 提交删除
// POST /delete_book/:id/
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		h.renderFetchError(c, id, err)
		return
	}

	response.Redirect(c, "/books/")
}

// bookID 解析路径中的图书主键,非法或超出uint范围的值按404处理
// 按32位解析,避免uint为32位的平台上发生截断
func (h *BookHandler) bookID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("找不到主键为 %s 的图书", raw))
		return 0, false
	}
	return uint(id), true
}

// renderFetchError 查询图书失败的统一出口
func (h *BookHandler) renderFetchError(c *gin.Context, id uint, err error) {
	if errors.Is(err, book.ErrBookNotFound) {
		response.NotFound(c, fmt.Sprintf("找不到主键为 %d 的图书", id))
		return
	}
	logger.Error("查询图书失败", err)
	response.Error(c, "图书信息暂时无法访问,请稍后重试")
}

// pushFlash 写入一次性提示,下一次列表页展示
// flash只是体验增强,存储失败不影响主流程
func (h *BookHandler) pushFlash(c *gin.Context, message string) {
	if h.flash == nil {
		return
	}
	if err := h.flash.Push(c.Request.Context(), h.flashSessionID(c), message); err != nil {
		logger.Warn("写入flash提示失败", err)
	}
}

// popFlashes 取出并清空当前会话的全部提示
func (h *BookHandler) popFlashes(c *gin.Context) []string {
	if h.flash == nil {
		return nil
	}
	sid, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	flashes, err := h.flash.PopAll(c.Request.Context(), sid)
	if err != nil {
		logger.Warn("读取flash提示失败", err)
		return nil
	}
	return flashes
}

// flashSessionID 读取或签发匿名会话ID
func (h *BookHandler) flashSessionID(c *gin.Context) string {
	if sid, err := c.Cookie(flashCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(flashCookie, sid, flashCookieMaxAge, "/", "", false, true)
	return sid
}
