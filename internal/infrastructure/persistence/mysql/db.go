package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/mylibrary/internal/infrastructure/config"
	applog "github.com/xiebiao/mylibrary/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// MySQL不报告gorm.ErrDuplicatedKey,开启翻译后唯一索引冲突可用errors.Is判断
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	applog.Info("数据库连接成功", map[string]interface{}{
		"host":   cfg.Database.Host,
		"dbname": cfg.Database.DBName,
	})

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&MemberModel{},
		&LoanModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,domain/book/entity.go是领域实体,不依赖GORM
// 2. ISBN有唯一索引,并发重复写入由数据库兜底拒绝
// 3. PublicationDate使用DATE列,不含时间部分
type BookModel struct {
	ID              uint      `gorm:"primaryKey"`
	Authors         string    `gorm:"size:255;not null;comment:作者"`
	Title           string    `gorm:"size:255;not null;comment:书名"`
	PublicationDate time.Time `gorm:"type:date;not null;comment:出版日期"`
	ISBN            string    `gorm:"column:isbn;uniqueIndex;size:13;not null;comment:ISBN号"`
	CreatedAt       time.Time `gorm:"comment:创建时间"`
	UpdatedAt       time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// MemberModel GORM读者模型
// 数据结构预留:借阅功能尚未实现,目前没有任何行为
type MemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;comment:姓名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// LoanModel GORM借阅模型
// 数据结构预留:外键RESTRICT,被借阅引用的图书或读者不允许删除
type LoanModel struct {
	ID        uint        `gorm:"primaryKey"`
	MemberID  uint        `gorm:"index;not null;comment:读者ID"`
	BookID    uint        `gorm:"index;not null;comment:图书ID"`
	StartDate time.Time   `gorm:"type:date;not null;comment:起借日期"`
	EndDate   *time.Time  `gorm:"type:date;comment:归还日期"`
	Member    MemberModel `gorm:"foreignKey:MemberID;constraint:OnDelete:RESTRICT"`
	Book      BookModel   `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "loans"
}
