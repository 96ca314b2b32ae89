// 样例数据生成工具
//
// 用法:
//
//	go run ./cmd/seed           # 写入100本随机图书
//	go run ./cmd/seed -unseed   # 清空全部图书
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/internal/infrastructure/config"
	"github.com/xiebiao/mylibrary/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/mylibrary/pkg/logger"
)

const seedCount = 100

func main() {
	unseed := flag.Bool("unseed", false, "清空全部图书数据")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	if *unseed {
		if err := removeAll(db); err != nil {
			log.Fatalf("清空图书失败: %v", err)
		}
		fmt.Println("已清空全部图书")
		return
	}

	n, err := seed(db)
	if err != nil {
		log.Fatalf("写入样例数据失败: %v", err)
	}
	fmt.Printf("已写入%d本样例图书\n", n)
}

// seed 写入随机图书
// 作者用"姓, 名"格式,ISBN为随机13位数字(进程内去重,数据库唯一索引兜底)
func seed(db *gorm.DB) (int, error) {
	faker := gofakeit.New(0)
	usedISBN := make(map[string]bool, seedCount)

	created := 0
	for created < seedCount {
		isbn := randomISBN13(faker)
		if usedISBN[isbn] {
			continue
		}
		usedISBN[isbn] = true

		pubDate := faker.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Now(),
		)

		b := book.NewBook(
			fmt.Sprintf("%s, %s", faker.LastName(), faker.FirstName()),
			faker.Sentence(4),
			time.Date(pubDate.Year(), pubDate.Month(), pubDate.Day(), 0, 0, 0, 0, time.UTC),
			isbn,
		)

		model := mysql.BookModel{
			Authors:         b.Authors,
			Title:           b.Title,
			PublicationDate: b.PublicationDate,
			ISBN:            b.ISBN,
			CreatedAt:       b.CreatedAt,
			UpdatedAt:       b.UpdatedAt,
		}
		if err := db.Create(&model).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// randomISBN13 生成13位纯数字ISBN(978前缀)
func randomISBN13(faker *gofakeit.Faker) string {
	return "978" + faker.DigitN(10)
}

// removeAll 删除全部图书记录
func removeAll(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&mysql.BookModel{}).Error
}
