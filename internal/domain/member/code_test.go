package member

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCode(t *testing.T) {
	cases := map[int64]string{
		1:    "M001",
		42:   "M042",
		999:  "M999",
		1000: "M1000",
	}
	for n, want := range cases {
		assert.Equal(t, want, FormatCode(n))
	}
}

func TestParseCode(t *testing.T) {
	t.Run("合法编号", func(t *testing.T) {
		n, ok := ParseCode("M007")
		assert.True(t, ok)
		assert.Equal(t, int64(7), n)

		n, ok = ParseCode("M1000")
		assert.True(t, ok)
		assert.Equal(t, int64(1000), n)
	})

	t.Run("非法编号", func(t *testing.T) {
		for _, code := range []string{"", "M", "X001", "M-1", "Mabc", "m001"} {
			_, ok := ParseCode(code)
			assert.False(t, ok, code)
		}
	})
}

// memorySequence 内存计数器(测试用)
type memorySequence struct {
	values map[string]int64
	seeded int
}

func (s *memorySequence) Next(ctx context.Context, name string, seed func(ctx context.Context) (int64, error)) (int64, error) {
	v, ok := s.values[name]
	if !ok {
		start, err := seed(ctx)
		if err != nil {
			return 0, err
		}
		s.seeded++
		v = start
	}
	v++
	s.values[name] = v
	return v, nil
}

// stubRepository 只实现种子计算用到的方法
type stubRepository struct {
	Repository
	latest   *Member
	count    int64
	latestEr error
}

func (r *stubRepository) Latest(ctx context.Context) (*Member, error) {
	if r.latestEr != nil {
		return nil, r.latestEr
	}
	if r.latest == nil {
		return nil, ErrMemberNotFound
	}
	return r.latest, nil
}

func (r *stubRepository) Count(ctx context.Context) (int64, error) {
	return r.count, nil
}

func TestCodeGenerator_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("没有会员时从M001开始", func(t *testing.T) {
		seq := &memorySequence{values: map[string]int64{}}
		gen := NewCodeGenerator(seq, &stubRepository{})

		first, err := gen.Next(ctx)
		require.NoError(t, err)
		second, err := gen.Next(ctx)
		require.NoError(t, err)

		assert.Equal(t, "M001", first)
		assert.Equal(t, "M002", second)
		assert.Equal(t, 1, seq.seeded, "种子只计算一次")
	})

	t.Run("以最近会员编号为种子", func(t *testing.T) {
		seq := &memorySequence{values: map[string]int64{}}
		gen := NewCodeGenerator(seq, &stubRepository{latest: &Member{Code: "M041"}})

		code, err := gen.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "M042", code)
	})

	t.Run("最近编号不可解析时退化为会员总数", func(t *testing.T) {
		seq := &memorySequence{values: map[string]int64{}}
		gen := NewCodeGenerator(seq, &stubRepository{latest: &Member{Code: "legacy"}, count: 5})

		code, err := gen.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "M006", code)
	})

	t.Run("超过999不回绕", func(t *testing.T) {
		seq := &memorySequence{values: map[string]int64{SequenceName: 999}}
		gen := NewCodeGenerator(seq, &stubRepository{})

		code, err := gen.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, "M1000", code)
	})

	t.Run("种子查询失败时返回错误", func(t *testing.T) {
		boom := errors.New("db down")
		seq := &memorySequence{values: map[string]int64{}}
		gen := NewCodeGenerator(seq, &stubRepository{latestEr: boom})

		_, err := gen.Next(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
