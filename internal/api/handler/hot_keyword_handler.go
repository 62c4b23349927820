package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/response"
	"Folio/internal/pkg/util"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
)

type HotKeywordHandler struct {
	hotKeywordSvc service.HotKeywordService
}

func NewHotKeywordHandler(hotKeywordSvc service.HotKeywordService) *HotKeywordHandler {
	return &HotKeywordHandler{
		hotKeywordSvc: hotKeywordSvc,
	}
}

func (s *HotKeywordHandler) GetHotKeywords(c *gin.Context) {
	var query dto.HotKeywordQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}

	keywords, err := s.hotKeywordSvc.Top(c.Request.Context(), query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keywords)
}
