package book

import (
	"fmt"
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是馆藏目录的唯一领域实体,对应数据库的一行记录
// 2. ID由数据库自增分配,创建后不可变更
// 3. ISBN作为业务唯一标识(数据库层有唯一索引兜底)
// 4. PublicationDate只保留日期部分,不含时间
type Book struct {
	ID              uint
	Authors         string    // 作者(自由文本,如"Doe, J.")
	Title           string    // 书名
	PublicationDate time.Time // 出版日期(仅日期)
	ISBN            string    // ISBN号(10位或13位纯数字)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段校验由Validate负责,工厂只负责组装
func NewBook(authors, title string, publicationDate time.Time, isbn string) *Book {
	now := time.Now()
	return &Book{
		Authors:         authors,
		Title:           title,
		PublicationDate: publicationDate,
		ISBN:            isbn,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// String 图书的单行文本描述
// 固定格式: `Doe, J.    (2024)  "A title"    ISBN 1234567890123.`
// 列表页、详情页和更新提示都使用该描述
func (b *Book) String() string {
	return fmt.Sprintf("%s    (%d)  %q    ISBN %s.", b.Authors, b.PublicationDate.Year(), b.Title, b.ISBN)
}

// Replace 用新值整体替换可变字段(更新操作)
// 业务规则:ID不变,四个可变字段全量覆盖
func (b *Book) Replace(authors, title string, publicationDate time.Time, isbn string) {
	b.Authors = authors
	b.Title = title
	b.PublicationDate = publicationDate
	b.ISBN = isbn
	b.UpdatedAt = time.Now()
}
