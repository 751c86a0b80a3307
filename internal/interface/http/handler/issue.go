package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	applending "github.com/xiebiao/library/internal/application/lending"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// IssueHandler 借阅HTTP处理器
// 借书、还书被拒绝(副本不足、已归还等)时仍返回code=0,
// data.outcome为declined,data.reason说明原因
type IssueHandler struct {
	issueBookUseCase  *applending.IssueBookUseCase
	returnBookUseCase *applending.ReturnBookUseCase
	lookupUseCase     *catalog.LookupUseCase
}

// NewIssueHandler 创建借阅处理器
func NewIssueHandler(
	issueBookUseCase *applending.IssueBookUseCase,
	returnBookUseCase *applending.ReturnBookUseCase,
	lookupUseCase *catalog.LookupUseCase,
) *IssueHandler {
	return &IssueHandler{
		issueBookUseCase:  issueBookUseCase,
		returnBookUseCase: returnBookUseCase,
		lookupUseCase:     lookupUseCase,
	}
}

// Issue 借书
// @Summary      借书
// @Description  借出一本图书,副本数减1;图书不存在、无可借副本、会员不存在时outcome为declined
// @Tags         借阅
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.IssueBookRequest true "借阅信息"
// @Success      200 {object} response.Response{data=applending.IssueBookResponse}
// @Router       /api/v1/issues [post]
func (h *IssueHandler) Issue(c *gin.Context) {
	var req dto.IssueBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.issueBookUseCase.Execute(c.Request.Context(), applending.IssueBookRequest{
		MemberCode: req.MemberID,
		BookID:     req.BookID.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Return 还书
// @Summary      还书
// @Description  归还借阅,副本数加1;重复归还outcome为declined(already_returned),副本数不变
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅ID"
// @Success      200 {object} response.Response{data=applending.ReturnBookResponse}
// @Router       /api/v1/issues/{id}/return [post]
func (h *IssueHandler) Return(c *gin.Context) {
	result, err := h.returnBookUseCase.Execute(c.Request.Context(), applending.ReturnBookRequest{
		IssueID: c.Param("id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 借阅列表
// @Summary      借阅列表
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=[]catalog.IssueView}
// @Router       /api/v1/issues [get]
func (h *IssueHandler) List(c *gin.Context) {
	issues, err := h.lookupUseCase.Issues(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, issues)
}

// Get 借阅详情
// @Summary      借阅详情
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅ID"
// @Success      200 {object} response.Response{data=catalog.IssueView}
// @Failure      200 {object} response.Response "40403 借阅记录不存在"
// @Router       /api/v1/issues/{id} [get]
func (h *IssueHandler) Get(c *gin.Context) {
	view, err := h.lookupUseCase.Issue(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}
