package gormstore

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - SQLite: UNIQUE constraint failed: table.column
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// isDuplicateOn 唯一索引冲突是否发生在指定列上
// MySQL错误信息带索引名(idx_members_email),SQLite带列名(members.email)
func isDuplicateOn(err error, column string) bool {
	return isDuplicateError(err) && strings.Contains(err.Error(), column)
}
