package member_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/domain/outcome"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore/gormtest"
)

type fixture struct {
	uc       *appmember.RegisterMemberUseCase
	repo     member.Repository
	recorder *event.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := gormtest.Open(t)
	repo := gormstore.NewMemberRepository(db)
	recorder := &event.Recorder{}
	codes := member.NewCodeGenerator(gormstore.NewSequenceRepository(db), repo)
	return &fixture{
		uc:       appmember.NewRegisterMemberUseCase(repo, codes, gormstore.NewTxManager(db), recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func TestRegisterMember(t *testing.T) {
	ctx := context.Background()

	t.Run("编号按注册顺序递增", func(t *testing.T) {
		f := newFixture(t)

		for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
			resp, err := f.uc.Execute(ctx, appmember.RegisterMemberRequest{Name: "N", Email: email, Phone: "1"})
			require.NoError(t, err)
			require.True(t, resp.IsCreated())
			assert.Equal(t, member.FormatCode(int64(i+1)), resp.Member.Code)
		}

		assert.Equal(t, []event.Type{event.MemberRegistered, event.MemberRegistered, event.MemberRegistered}, f.recorder.Types())
		t.Log("✅ M001, M002, M003")
	})

	t.Run("邮箱重复返回Duplicate且不写入", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.uc.Execute(ctx, appmember.RegisterMemberRequest{Name: "Ada", Email: "ada@example.com"})
		require.NoError(t, err)
		require.True(t, first.IsCreated())

		again, err := f.uc.Execute(ctx, appmember.RegisterMemberRequest{Name: "Other", Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, outcome.Duplicate(outcome.ReasonEmailTaken), again.Result)
		assert.Nil(t, again.Member)

		total, err := f.repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		// 重复注册不消耗编号
		next, err := f.uc.Execute(ctx, appmember.RegisterMemberRequest{Name: "Grace", Email: "grace@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "M002", next.Member.Code)
		assert.Len(t, f.recorder.Events(), 2)
	})

	t.Run("并发注册不会分配重复编号", func(t *testing.T) {
		f := newFixture(t)

		const n = 8
		codes := make(chan string, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp, err := f.uc.Execute(ctx, appmember.RegisterMemberRequest{
					Name:  "Concurrent",
					Email: member.FormatCode(int64(i)) + "@example.com",
				})
				if assert.NoError(t, err) && assert.True(t, resp.IsCreated()) {
					codes <- resp.Member.Code
				}
			}(i)
		}
		wg.Wait()
		close(codes)

		seen := make(map[string]bool)
		for code := range codes {
			assert.False(t, seen[code], "编号重复: %s", code)
			seen[code] = true
		}
		assert.Len(t, seen, n)
	})
}
