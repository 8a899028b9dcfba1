package batch

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/acecourt/internal/storage"
)

func RegisterBatchRoutes(router *gin.RouterGroup, store storage.Storage) {
	bc := NewBatchController(store)

	batches := router.Group("/batches")
	{
		batches.GET("", bc.ListBatches)
		batches.POST("", bc.CreateBatch)
		batches.PATCH("/:id", bc.UpdateBatch)
		batches.DELETE("/:id", bc.DeleteBatch)
	}
}
