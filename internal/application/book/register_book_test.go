package book_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/event"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore/gormtest"
)

func TestRegisterBook_CopiesNormalization(t *testing.T) {
	ctx := context.Background()
	repo := gormstore.NewBookRepository(gormtest.Open(t))
	recorder := &event.Recorder{}
	uc := appbook.NewRegisterBookUseCase(repo, recorder)

	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-5", 1},
		{"3", 3},
		{"abc", 1},
		{"", 1},
		{" 7 ", 7},
	}

	for _, tt := range tests {
		t.Run("copies="+tt.raw, func(t *testing.T) {
			resp, err := uc.Execute(ctx, appbook.RegisterBookRequest{Title: "Dune", Author: "Frank Herbert", Copies: tt.raw})
			require.NoError(t, err)
			require.True(t, resp.IsCreated())
			assert.Equal(t, tt.want, resp.Book.Copies)
			assert.Equal(t, tt.want, resp.Book.TotalCopies)

			stored, err := repo.FindByID(ctx, resp.Book.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Copies)
		})
	}

	assert.Len(t, recorder.Events(), len(tests))
	for _, e := range recorder.Events() {
		assert.Equal(t, event.BookRegistered, e.Type)
		assert.NotZero(t, e.BookID)
	}
}
