package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/application/catalog"
	"github.com/xiebiao/library/pkg/response"
)

// LibraryHandler 馆藏总览处理器
type LibraryHandler struct {
	listAllUseCase     *catalog.ListAllUseCase
	circulationUseCase *catalog.CirculationUseCase
}

// NewLibraryHandler 创建总览处理器
func NewLibraryHandler(listAllUseCase *catalog.ListAllUseCase, circulationUseCase *catalog.CirculationUseCase) *LibraryHandler {
	return &LibraryHandler{
		listAllUseCase:     listAllUseCase,
		circulationUseCase: circulationUseCase,
	}
}

// Overview 馆藏总览
// @Summary      馆藏总览
// @Description  全部会员、图书、借阅记录(借阅带会员和图书信息)
// @Tags         总览
// @Produce      json
// @Success      200 {object} response.Response{data=catalog.Overview}
// @Router       /api/v1/library [get]
func (h *LibraryHandler) Overview(c *gin.Context) {
	overview, err := h.listAllUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

// Circulation 流通核对
// @Summary      流通核对
// @Description  逐本核对:可借副本数 + 未归还借阅数 == 登记总数
// @Tags         总览
// @Produce      json
// @Success      200 {object} response.Response{data=[]catalog.CirculationReport}
// @Router       /api/v1/library/circulation [get]
func (h *LibraryHandler) Circulation(c *gin.Context) {
	reports, err := h.circulationUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reports)
}
