package router_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/application/event"
	applending "github.com/xiebiao/library/internal/application/lending"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore/gormtest"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := gormtest.Open(t)
	members := gormstore.NewMemberRepository(db)
	books := gormstore.NewBookRepository(db)
	issues := gormstore.NewIssueRepository(db)
	txManager := gormstore.NewTxManager(db)
	codes := member.NewCodeGenerator(gormstore.NewSequenceRepository(db), members)
	notifier := event.NopNotifier{}
	lookup := catalog.NewLookupUseCase(members, books, issues)

	cfg := &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return router.New(cfg, logger, router.Handlers{
		Library: handler.NewLibraryHandler(
			catalog.NewListAllUseCase(members, books, issues, catalog.NopCache{}),
			catalog.NewCirculationUseCase(books, issues),
		),
		Member: handler.NewMemberHandler(appmember.NewRegisterMemberUseCase(members, codes, txManager, notifier), lookup),
		Book:   handler.NewBookHandler(appbook.NewRegisterBookUseCase(books, notifier), lookup),
		Issue: handler.NewIssueHandler(
			applending.NewIssueBookUseCase(books, members, issues, txManager, notifier),
			applending.NewReturnBookUseCase(issues, books, txManager, notifier),
			lookup,
		),
	})
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(t, r, req)
}

func doForm(t *testing.T, r http.Handler, path string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(t, r, req)
}

func serve(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func decode(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"), "沿用客户端请求ID")
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodGet, "/ping", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestMemberHandler(t *testing.T) {
	r := newTestRouter(t)

	t.Run("JSON注册分配编号", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/v1/members",
			`{"name":"Ada","email":"ada@example.com","phone":"555-0100"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		require.Equal(t, 0, env.Code)

		var data struct {
			Outcome string `json:"outcome"`
			Member  struct {
				Code  string `json:"code"`
				Email string `json:"email"`
			} `json:"member"`
		}
		decode(t, env.Data, &data)
		assert.Equal(t, "created", data.Outcome)
		assert.Equal(t, "M001", data.Member.Code)
		t.Log("✅ 会员编号:", data.Member.Code)
	})

	t.Run("表单注册", func(t *testing.T) {
		_, env := doForm(t, r, "/api/v1/members", url.Values{
			"name":  {"Grace"},
			"email": {"grace@example.com"},
		})
		require.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"code":"M002"`)
	})

	t.Run("邮箱重复返回40003", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, "/api/v1/members",
			`{"name":"Someone","email":"ada@example.com"}`)
		assert.Equal(t, apperrors.ErrCodeEmailDuplicate, env.Code)
		assert.Equal(t, "邮箱已被注册", env.Message)
	})

	t.Run("缺少必填字段", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, "/api/v1/members", `{"email":"x@example.com"}`)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, env.Code)
		assert.True(t, strings.HasPrefix(env.Message, "参数错误"))
	})

	t.Run("列表与按编号查询", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodGet, "/api/v1/members", "")
		var list []appmember.MemberDTO
		decode(t, env.Data, &list)
		require.Len(t, list, 2)
		assert.Equal(t, "M001", list[0].Code)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/members/M002", "")
		var m appmember.MemberDTO
		decode(t, env.Data, &m)
		assert.Equal(t, "Grace", m.Name)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/members/M999", "")
		assert.Equal(t, apperrors.ErrCodeMemberNotFound, env.Code)
	})
}

func TestBookHandler(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		copies string
		want   int
	}{
		{"副本为0按1处理", "0", 1},
		{"负数按1处理", "-5", 1},
		{"正常副本数", "3", 3},
		{"非数字按1处理", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := doForm(t, r, "/api/v1/books", url.Values{
				"title":  {"Dune"},
				"author": {"Frank Herbert"},
				"copies": {tt.copies},
			})
			require.Equal(t, 0, env.Code)

			var data appbook.RegisterBookResponse
			decode(t, env.Data, &data)
			require.NotNil(t, data.Book)
			assert.Equal(t, tt.want, data.Book.Copies)
		})
	}

	t.Run("JSON数字副本数", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, "/api/v1/books",
			`{"title":"Emma","author":"Jane Austen","copies":2}`)
		require.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"copies":2`)
	})

	t.Run("查询", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodGet, "/api/v1/books/1", "")
		require.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"title":"Dune"`)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/books/abc", "")
		assert.Equal(t, apperrors.ErrCodeBookNotFound, env.Code)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/books", "")
		var list []appbook.BookDTO
		decode(t, env.Data, &list)
		assert.Len(t, list, 5)
	})
}

func TestIssueHandler_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/members", `{"name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, 0, env.Code)
	_, env = doJSON(t, r, http.MethodPost, "/api/v1/books", `{"title":"Dune","author":"Frank Herbert","copies":"2"}`)
	require.Equal(t, 0, env.Code)

	issue := func(t *testing.T, body string) applending.IssueBookResponse {
		t.Helper()
		_, env := doJSON(t, r, http.MethodPost, "/api/v1/issues", body)
		require.Equal(t, 0, env.Code, env.Message)
		var resp applending.IssueBookResponse
		decode(t, env.Data, &resp)
		return resp
	}

	first := issue(t, `{"member_id":"M001","book_id":1}`)
	require.True(t, first.IsCreated())
	second := issue(t, `{"member_id":"M001","book_id":"1"}`)
	require.True(t, second.IsCreated())

	t.Run("无可借副本", func(t *testing.T) {
		resp := issue(t, `{"member_id":"M001","book_id":1}`)
		assert.Equal(t, "declined", string(resp.Kind))
		assert.Equal(t, "no_copies_available", string(resp.Reason))
		assert.Nil(t, resp.Issue)
	})

	t.Run("图书ID格式错误", func(t *testing.T) {
		resp := issue(t, `{"member_id":"M001","book_id":"abc"}`)
		assert.Equal(t, "malformed_book_id", string(resp.Reason))
	})

	t.Run("会员不存在", func(t *testing.T) {
		_, env := doForm(t, r, "/api/v1/issues", url.Values{"member_id": {"M404"}, "book_id": {"1"}})
		assert.Contains(t, string(env.Data), `"reason":"`)
	})

	returnPath := "/api/v1/issues/" + jsonID(first.Issue.ID) + "/return"

	t.Run("归还后可再借", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, returnPath, "")
		require.Equal(t, 0, env.Code)
		var resp applending.ReturnBookResponse
		decode(t, env.Data, &resp)
		assert.True(t, resp.IsReturned())
		assert.Equal(t, "Returned", resp.Issue.Status)

		again := issue(t, `{"member_id":"M001","book_id":1}`)
		assert.True(t, again.IsCreated())
	})

	t.Run("重复归还被拒绝", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodPost, returnPath, "")
		require.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"reason":"already_returned"`)
	})

	t.Run("总览与流通核对", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodGet, "/api/v1/library", "")
		require.Equal(t, 0, env.Code)
		var overview catalog.Overview
		decode(t, env.Data, &overview)
		assert.Len(t, overview.Members, 1)
		assert.Len(t, overview.Books, 1)
		require.Len(t, overview.Issues, 3)
		assert.Equal(t, "M001", overview.Issues[0].MemberCode)
		assert.Equal(t, "Dune", overview.Issues[0].BookTitle)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/library/circulation", "")
		var reports []catalog.CirculationReport
		decode(t, env.Data, &reports)
		require.Len(t, reports, 1)
		assert.True(t, reports[0].Consistent)
		assert.Equal(t, 0, reports[0].Copies)
		assert.Equal(t, int64(2), reports[0].Outstanding)
	})

	t.Run("借阅查询", func(t *testing.T) {
		_, env := doJSON(t, r, http.MethodGet, "/api/v1/issues/"+jsonID(first.Issue.ID), "")
		require.Equal(t, 0, env.Code)
		assert.Contains(t, string(env.Data), `"status":"Returned"`)

		_, env = doJSON(t, r, http.MethodGet, "/api/v1/issues/999", "")
		assert.Equal(t, apperrors.ErrCodeIssueNotFound, env.Code)
	})
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
