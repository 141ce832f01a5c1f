package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/synthlab/crucible/internal/core/model"
	"github.com/synthlab/crucible/internal/core/resolver"
	"github.com/synthlab/crucible/internal/store"
)

// User-facing failure messages, one per terminal outcome, matching the
// messages the game shipped with.
const (
	msgMissingInput    = "재료가 부족합니다."
	msgElementNotFound = "재료를 찾을 수 없습니다."
	msgSynthesisFailed = "새로운 발견에 실패했습니다."
	msgStorageFailed   = "저장에 실패했습니다."
	msgInternal        = "서버 오류가 발생했습니다."
)

type CombineRequest struct {
	ElementAID int64 `json:"element_a_id"`
	ElementBID int64 `json:"element_b_id"`
}

func (s *Server) Combine(c *gin.Context) {
	var req CombineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
		return
	}

	el, isNew, err := s.Resolver.Resolve(c.Request.Context(), req.ElementAID, req.ElementBID)
	if err != nil {
		s.renderResolveError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":           el,
		"is_new_discovery": isNew,
	})
}

func (s *Server) renderResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resolver.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
	case errors.Is(err, resolver.ErrElementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgElementNotFound})
	case errors.Is(err, resolver.ErrSynthesisFailed):
		s.log.Error("synthesis failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msgSynthesisFailed})
	case errors.Is(err, resolver.ErrStorageFailed):
		s.log.Error("storage failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStorageFailed})
	default:
		s.log.Error("combine failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func (s *Server) Starters(c *gin.Context) {
	starters := store.Starters()
	ids := make([]int64, 0, len(starters))
	for _, el := range starters {
		ids = append(ids, el.ID)
	}

	els, err := s.Store.GetElements(c.Request.Context(), ids)
	if err != nil {
		s.log.Error("failed to fetch starters", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStorageFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"elements": els})
}

func (s *Server) GetElement(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
		return
	}

	el, err := s.Store.GetElement(c.Request.Context(), id)
	if err != nil {
		s.log.Error("failed to fetch element", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStorageFailed})
		return
	}
	if el == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgElementNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"element": el})
}

type SaveProgressRequest struct {
	PlayerID   uuid.UUID `json:"player_id" binding:"required"`
	ElementIDs []int64   `json:"element_ids" binding:"required"`
}

func (s *Server) SaveProgress(c *gin.Context) {
	var req SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
		return
	}

	if err := s.Store.UnlockElements(c.Request.Context(), req.PlayerID, req.ElementIDs); err != nil {
		s.log.Error("failed to save progress", "player_id", req.PlayerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStorageFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (s *Server) GetProgress(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("player_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingInput})
		return
	}

	els, err := s.Store.GetProgress(c.Request.Context(), playerID)
	if err != nil {
		s.log.Error("failed to fetch progress", "player_id", playerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStorageFailed})
		return
	}
	if els == nil {
		els = []model.Element{}
	}

	c.JSON(http.StatusOK, gin.H{"elements": els})
}
