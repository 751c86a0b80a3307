// Package gormtest 为测试提供迁移好的SQLite内存数据库
package gormtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
)

var seq atomic.Int64

// Open 打开一个独立的内存数据库并完成迁移,测试结束时关闭
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:librarytest%d?mode=memory&cache=shared&_foreign_keys=on", seq.Add(1))
	db, err := gormstore.Open(config.DriverSQLite, dsn, logger.Silent)
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	if err := gormstore.AutoMigrate(db); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
