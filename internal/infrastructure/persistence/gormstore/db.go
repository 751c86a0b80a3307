package gormstore

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 支持MySQL(生产)和SQLite(单机/开发/测试),由database.driver选择
// 2. 配置连接池参数；SQLite只保留一个连接，写事务天然串行
// 3. debug模式打印SQL
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := Open(cfg.Database.Driver, cfg.Database.DSN(), logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	if cfg.Database.Driver == config.DriverMySQL {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	slog.Info("✓ 数据库连接成功", slog.String("driver", cfg.Database.Driver))

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// Open 按驱动打开数据库
// SQLite连接池固定为1个连接(内存库需要共享同一连接,文件库避免写锁竞争)
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if driver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("获取SQL DB失败: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&MemberModel{},
		&BookModel{},
		&IssueModel{},
		&SequenceModel{},
	)
}

// MemberModel GORM会员模型
// 设计说明：
// 1. Code、Email都有唯一索引，并发注册时由数据库兜底
// 2. domain/member/entity.go是领域实体，不依赖GORM
type MemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"uniqueIndex;size:16;not null;comment:会员编号"`
	Name      string    `gorm:"size:100;not null;comment:姓名"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Phone     string    `gorm:"size:30;comment:电话"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// BookModel GORM图书模型
// copies不设默认值,0是合法的已借空状态
type BookModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null;comment:书名"`
	Author      string    `gorm:"size:100;not null;comment:作者"`
	Copies      int       `gorm:"not null;comment:可借副本数"`
	TotalCopies int       `gorm:"not null;comment:登记副本总数"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// IssueModel GORM借阅模型
// (book_id, status)复合索引用于统计每本书的未归还数
type IssueModel struct {
	ID         uint       `gorm:"primaryKey"`
	MemberID   uint       `gorm:"index;not null;comment:会员ID"`
	BookID     uint       `gorm:"index:idx_issue_book_status;not null;comment:图书ID"`
	Status     string     `gorm:"index:idx_issue_book_status;size:20;not null;comment:状态(Issued/Returned)"`
	IssueDate  time.Time  `gorm:"not null;comment:借出时间"`
	ReturnedAt *time.Time `gorm:"comment:归还时间"`
	UpdatedAt  time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (IssueModel) TableName() string {
	return "issues"
}

// SequenceModel 命名计数器
type SequenceModel struct {
	Name  string `gorm:"primaryKey;size:50;comment:计数器名称"`
	Value int64  `gorm:"not null;comment:最近分配的值"`
}

// TableName 指定表名
func (SequenceModel) TableName() string {
	return "sequences"
}
