package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Run("成功结果", func(t *testing.T) {
		assert.True(t, Created().Applied())
		assert.True(t, Returned().Applied())
		assert.True(t, Created().IsCreated())
		assert.True(t, Returned().IsReturned())
		assert.Equal(t, "created", Created().String())
	})

	t.Run("拒绝结果不产生变更", func(t *testing.T) {
		r := Declined(ReasonNoCopiesAvailable)
		assert.False(t, r.Applied())
		assert.True(t, r.IsDeclined())
		assert.Equal(t, "declined:no_copies_available", r.String())
		assert.Equal(t, "没有可借的副本", r.Reason.Message())
	})

	t.Run("重复结果", func(t *testing.T) {
		r := Duplicate(ReasonEmailTaken)
		assert.False(t, r.Applied())
		assert.True(t, r.IsDuplicate())
		assert.Equal(t, "邮箱已被注册", r.Reason.Message())
	})

	t.Run("未知原因没有文案", func(t *testing.T) {
		assert.Empty(t, ReasonNone.Message())
	})
}
