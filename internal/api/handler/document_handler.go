package handler

import (
	"Folio/internal/api/dto"
	"Folio/internal/pkg/consts"
	"Folio/internal/pkg/response"
	"Folio/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentSvc service.DocumentService
}

func NewDocumentHandler(documentSvc service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentSvc: documentSvc,
	}
}

func (s *DocumentHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateDocumentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	id, err := s.documentSvc.CreateDocument(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, id)
}

// SearchDocuments query 缺省等同于空串，返回全部文档
func (s *DocumentHandler) SearchDocuments(c *gin.Context) {
	var searchDTO dto.SearchDocumentDTO
	if err := c.ShouldBindQuery(&searchDTO); err != nil {
		response.Error(c, err)
		return
	}
	if searchDTO.Mode == "" {
		searchDTO.Mode = consts.DefaultSearchMode
	}

	docs, err := s.documentSvc.SearchDocuments(c.Request.Context(), searchDTO.Query, searchDTO.Mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, docs)
}

func (s *DocumentHandler) GetDocument(c *gin.Context) {
	documentIDStr := c.Param("document_id")
	documentID, err := strconv.ParseUint(documentIDStr, 10, 64)
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := s.documentSvc.GetDocument(c.Request.Context(), documentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, doc)
}

func (s *DocumentHandler) ListTags(c *gin.Context) {
	tags, err := s.documentSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
