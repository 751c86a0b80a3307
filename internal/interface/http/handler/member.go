package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	appmember "github.com/xiebiao/library/internal/application/member"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// MemberHandler 会员HTTP处理器
type MemberHandler struct {
	registerMemberUseCase *appmember.RegisterMemberUseCase
	lookupUseCase         *catalog.LookupUseCase
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(registerMemberUseCase *appmember.RegisterMemberUseCase, lookupUseCase *catalog.LookupUseCase) *MemberHandler {
	return &MemberHandler{
		registerMemberUseCase: registerMemberUseCase,
		lookupUseCase:         lookupUseCase,
	}
}

// Register 注册会员
// @Summary      注册会员
// @Description  分配会员编号(M001、M002...),邮箱已注册时返回40003
// @Tags         会员
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.RegisterMemberRequest true "会员信息"
// @Success      200 {object} response.Response{data=appmember.RegisterMemberResponse}
// @Failure      200 {object} response.Response "40003 邮箱已被注册"
// @Router       /api/v1/members [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req dto.RegisterMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerMemberUseCase.Execute(c.Request.Context(), appmember.RegisterMemberRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.IsDuplicate() {
		response.ErrorWithCode(c, apperrors.ErrCodeEmailDuplicate, result.Reason.Message())
		return
	}

	response.Success(c, result)
}

// List 会员列表
// @Summary      会员列表
// @Tags         会员
// @Produce      json
// @Success      200 {object} response.Response{data=[]appmember.MemberDTO}
// @Router       /api/v1/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.lookupUseCase.Members(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

// Get 按会员编号查询
// @Summary      会员详情
// @Tags         会员
// @Produce      json
// @Param        code path string true "会员编号" example(M001)
// @Success      200 {object} response.Response{data=appmember.MemberDTO}
// @Failure      200 {object} response.Response "40401 会员不存在"
// @Router       /api/v1/members/{code} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	m, err := h.lookupUseCase.Member(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, m)
}
