package handler

import (
	"strconv"

	"tipcloud/internal/adapter/http/dto"
	"tipcloud/internal/adapter/http/middleware"
	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/apperror"
	"tipcloud/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DJHandler handles directory endpoints.
type DJHandler struct {
	directorySvc ports.DirectoryService
	tipSvc       ports.TipService
}

// NewDJHandler creates a new DJHandler.
func NewDJHandler(directorySvc ports.DirectoryService, tipSvc ports.TipService) *DJHandler {
	return &DJHandler{directorySvc: directorySvc, tipSvc: tipSvc}
}

// List handles GET /api/v1/djs?q=&genre=&sort=.
func (h *DJHandler) List(c *gin.Context) {
	djs, err := h.directorySvc.List(c.Request.Context(), ports.DJQuery{
		Search: c.Query("q"),
		Genre:  c.Query("genre"),
		Sort:   domain.DJSort(c.Query("sort")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, djs, int64(len(djs)))
}

// Featured handles GET /api/v1/djs/featured?limit=.
func (h *DJHandler) Featured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	djs, err := h.directorySvc.Featured(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, djs, int64(len(djs)))
}

// Genres handles GET /api/v1/djs/genres.
func (h *DJHandler) Genres(c *gin.Context) {
	genres, err := h.directorySvc.Genres(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, genres, int64(len(genres)))
}

// Get handles GET /api/v1/djs/:id.
func (h *DJHandler) Get(c *gin.Context) {
	id, ok := djID(c)
	if !ok {
		return
	}

	dj, err := h.directorySvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	stats, err := h.tipSvc.Stats(c.Request.Context(), dj.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DJDetailResponse{DJ: *dj, Stats: *stats})
}

// Register handles POST /api/v1/djs.
func (h *DJHandler) Register(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RegisterDJRequest
	if err := dto.BindJSON(c, &req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	dj, err := h.directorySvc.Register(c.Request.Context(), userID.(uuid.UUID), ports.RegisterDJRequest{
		Name:          req.Name,
		Genre:         req.Genre,
		Bio:           req.Bio,
		SoundCloudURL: req.SoundCloudURL,
		WalletAddress: req.WalletAddress,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dj)
}

// RecentTips handles GET /api/v1/djs/:id/tips?limit=.
func (h *DJHandler) RecentTips(c *gin.Context) {
	id, ok := djID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	tips, err := h.tipSvc.Recent(c.Request.Context(), id, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, tips, int64(len(tips)))
}

func djID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !dto.IsSafeID(id) {
		response.Error(c, apperror.Validation("invalid DJ id"))
		return "", false
	}
	return id, true
}
