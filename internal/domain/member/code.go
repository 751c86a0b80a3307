package member

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// CodePrefix 会员编号前缀
	CodePrefix = "M"

	// SequenceName 会员编号计数器名称
	SequenceName = "member_code"

	codeWidth = 3
)

// FormatCode 格式化会员编号
// 格式:M + 至少3位数字(不足补0)
// 示例:1 → M001, 42 → M042, 1000 → M1000(超过999不回绕)
func FormatCode(n int64) string {
	return fmt.Sprintf("%s%0*d", CodePrefix, codeWidth, n)
}

// ParseCode 解析会员编号中的数字部分
// 不是"M+非负整数"格式时返回false
func ParseCode(code string) (int64, bool) {
	if !strings.HasPrefix(code, CodePrefix) {
		return 0, false
	}
	digits := code[len(CodePrefix):]
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// CodeGenerator 会员编号生成器
// 设计说明:
// 1. 编号来自数据库中的命名计数器(sequences表),在注册事务内递增
// 2. 两个并发注册不会拿到同一个编号(计数器行的UPDATE会串行化)
// 3. 计数器首次使用时,以最近创建会员的编号作为种子,兼容已有数据
type CodeGenerator struct {
	seq  Sequence
	repo Repository
}

// NewCodeGenerator 创建会员编号生成器
func NewCodeGenerator(seq Sequence, repo Repository) *CodeGenerator {
	return &CodeGenerator{seq: seq, repo: repo}
}

// Next 分配下一个会员编号
// 必须在注册会员的同一事务中调用
func (g *CodeGenerator) Next(ctx context.Context) (string, error) {
	n, err := g.seq.Next(ctx, SequenceName, g.seed)
	if err != nil {
		return "", err
	}
	return FormatCode(n), nil
}

// seed 计算计数器初始值
// 1. 没有会员:0(第一个编号为M001)
// 2. 最近会员编号可解析:取其数字部分
// 3. 编号不可解析:退化为会员总数
func (g *CodeGenerator) seed(ctx context.Context) (int64, error) {
	last, err := g.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if n, ok := ParseCode(last.Code); ok {
		return n, nil
	}

	return g.repo.Count(ctx)
}
