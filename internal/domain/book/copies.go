package book

import (
	"strconv"
	"strings"
)

// MinCopies 登记图书的最少副本数
const MinCopies = 1

// ClampCopies 副本数下限为1
func ClampCopies(n int) int {
	if n < MinCopies {
		return MinCopies
	}
	return n
}

// NormalizeCopies 解析用户输入的副本数
// 规则:
// - 去除首尾空白后按十进制整数解析
// - 解析失败(空串、非数字、溢出)按1处理
// - 小于1按1处理
//
// 示例:"3" → 3, "0" → 1, "-5" → 1, "abc" → 1
func NormalizeCopies(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return MinCopies
	}
	return ClampCopies(n)
}

// ParseBookID 解析用户输入的图书ID
// 不是正整数时返回false(调用方按"拒绝"处理,不报错)
func ParseBookID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
