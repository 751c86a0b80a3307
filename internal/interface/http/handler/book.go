package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	registerBookUseCase *appbook.RegisterBookUseCase
	lookupUseCase       *catalog.LookupUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(registerBookUseCase *appbook.RegisterBookUseCase, lookupUseCase *catalog.LookupUseCase) *BookHandler {
	return &BookHandler{
		registerBookUseCase: registerBookUseCase,
		lookupUseCase:       lookupUseCase,
	}
}

// Register 登记图书
// @Summary      登记图书
// @Description  copies无效或小于1时按1处理
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.RegisterBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=appbook.RegisterBookResponse}
// @Router       /api/v1/books [post]
func (h *BookHandler) Register(c *gin.Context) {
	var req dto.RegisterBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerBookUseCase.Execute(c.Request.Context(), appbook.RegisterBookRequest{
		Title:  req.Title,
		Author: req.Author,
		Copies: req.Copies.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 图书列表
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]appbook.BookDTO}
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.lookupUseCase.Books(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=appbook.BookDTO}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	b, err := h.lookupUseCase.Book(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, b)
}
