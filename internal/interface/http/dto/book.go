// Package dto 表单绑定与视图模型
// 设计说明：
// 1. 表单字段全部按原始字符串接收,解析和校验交给应用层流水线
// 2. 错误原因标签在这里翻译成用户可见的中文提示,领域层不关心文案
package dto

import (
	appbook "github.com/xiebiao/mylibrary/internal/application/book"
	"github.com/xiebiao/mylibrary/internal/domain/book"
)

// BookForm 创建/更新图书的表单
type BookForm struct {
	Authors         string `form:"authors"`
	Title           string `form:"title"`
	PublicationDate string `form:"publication_date"`
	ISBN            string `form:"isbn"`
}

// ToInput 转换为应用层的表单输入
func (f *BookForm) ToInput() appbook.FormInput {
	return appbook.FormInput{
		Authors:         f.Authors,
		Title:           f.Title,
		PublicationDate: f.PublicationDate,
		ISBN:            f.ISBN,
	}
}

// FormFromBook 用已有图书回填表单(更新页的初始值)
func FormFromBook(b *book.Book) BookForm {
	return BookForm{
		Authors:         b.Authors,
		Title:           b.Title,
		PublicationDate: b.PublicationDate.Format("2006-01-02"),
		ISBN:            b.ISBN,
	}
}

// BookView 详情/确认页的视图模型
type BookView struct {
	ID              uint
	Authors         string
	Title           string
	PublicationDate string
	ISBN            string
	Description     string
}

// NewBookView 构建视图模型
func NewBookView(b *book.Book) BookView {
	return BookView{
		ID:              b.ID,
		Authors:         b.Authors,
		Title:           b.Title,
		PublicationDate: b.PublicationDate.Format("2006-01-02"),
		ISBN:            b.ISBN,
		Description:     b.String(),
	}
}

// reasonMessages 原因标签 → 中文提示
var reasonMessages = map[string]string{
	book.ReasonBlank:         "该字段不能为空",
	book.ReasonTooShort:      "长度不能少于4个字符",
	book.ReasonTooLong:       "长度不能超过255个字符",
	book.ReasonInvalidFormat: "必须是10位或13位的纯数字",
	book.ReasonInvalidDate:   "日期格式无效,请使用 YYYY-MM-DD",
	book.ReasonNotUnique:     "该ISBN号已被其他图书占用",
}

// FieldMessages 把字段错误标签翻译成用户提示
func FieldMessages(fields book.FieldErrors) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	msgs := make(map[string]string, len(fields))
	for field, reason := range fields {
		if msg, ok := reasonMessages[reason]; ok {
			msgs[field] = msg
		} else {
			msgs[field] = "输入不合法"
		}
	}
	return msgs
}
