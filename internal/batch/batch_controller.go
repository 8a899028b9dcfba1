package batch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/common"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/internal/storage"
	"github.com/DhavalSuthar-24/acecourt/pkg/responses"
)

type BatchController struct {
	store storage.Storage
}

func NewBatchController(store storage.Storage) *BatchController {
	return &BatchController{store: store}
}

// ListBatches godoc
// @Summary List batches
// @Description Coaches see the batches they coach; admins see all.
// @Tags batches
// @Produce json
// @Success 200 {array} models.Batch
// @Router /batches [get]
// @Security BearerAuth
func (bc *BatchController) ListBatches(c *gin.Context) {
	p, ok := common.GetPrincipal(c)
	if !ok {
		responses.Unauthorized(c, "")
		return
	}
	var filter models.BatchFilter
	if !p.IsAdmin() {
		filter.CoachID = &p.UserID
	}
	batches, err := bc.store.ListBatches(c.Request.Context(), filter)
	if err != nil {
		responses.FromError(c, "Failed to fetch batches", err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

// CreateBatch godoc
// @Summary Create a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param batch body CreateBatchRequest true "Batch"
// @Success 201 {object} models.Batch
// @Failure 400 {object} responses.ErrorResponse "Invalid input or unknown coach"
// @Router /batches [post]
// @Security BearerAuth
func (bc *BatchController) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if !common.BindJSON(c, &req) {
		return
	}
	b, err := bc.store.CreateBatch(c.Request.Context(), models.NewBatch{
		Name:     req.Name,
		AgeGroup: req.AgeGroup,
		Level:    req.Level,
		CoachID:  req.CoachID,
	})
	if err != nil {
		responses.FromError(c, "Failed to create batch", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// authorize loads the batch and checks that the principal may change it.
func (bc *BatchController) authorize(c *gin.Context, id uint) bool {
	b, err := bc.store.GetBatch(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to fetch batch", err)
		return false
	}
	if b == nil {
		responses.NotFound(c, "Batch")
		return false
	}
	p, _ := common.GetPrincipal(c)
	if !p.IsAdmin() && (b.CoachID == nil || *b.CoachID != p.UserID) {
		responses.Forbidden(c, "Only the batch coach or an admin can change this batch")
		return false
	}
	return true
}

// UpdateBatch godoc
// @Summary Update a batch
// @Tags batches
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param batch body UpdateBatchRequest true "Fields to change"
// @Success 200 {object} models.Batch
// @Failure 403 {object} responses.ErrorResponse "Not the batch coach"
// @Failure 404 {object} responses.ErrorResponse "Batch not found"
// @Router /batches/{id} [patch]
// @Security BearerAuth
func (bc *BatchController) UpdateBatch(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	var req UpdateBatchRequest
	if !common.BindJSON(c, &req) {
		return
	}
	if !bc.authorize(c, id) {
		return
	}
	b, err := bc.store.UpdateBatch(c.Request.Context(), id, models.BatchPatch{
		Name:     req.Name,
		AgeGroup: req.AgeGroup,
		Level:    req.Level,
		CoachID:  req.CoachID,
	})
	if err != nil {
		responses.FromError(c, "Failed to update batch", err)
		return
	}
	if b == nil {
		responses.NotFound(c, "Batch")
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBatch godoc
// @Summary Delete a batch
// @Description Students and sessions of the batch are kept.
// @Tags batches
// @Param id path int true "Batch ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse "Not the batch coach"
// @Failure 404 {object} responses.ErrorResponse "Batch not found"
// @Router /batches/{id} [delete]
// @Security BearerAuth
func (bc *BatchController) DeleteBatch(c *gin.Context) {
	id, ok := common.PathID(c, "id")
	if !ok {
		return
	}
	if !bc.authorize(c, id) {
		return
	}
	deleted, err := bc.store.DeleteBatch(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, "Failed to delete batch", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Batch")
		return
	}
	c.Status(http.StatusNoContent)
}
