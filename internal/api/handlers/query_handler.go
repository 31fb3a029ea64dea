package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hitchmap/internal/domain/entities"
	"hitchmap/internal/engine"
)

// QueryHandler exposes the spot query engine over HTTP. It holds no engine
// logic of its own — the envelope it forwards is exactly the in-process
// contract, so hosts embedding the engine directly see identical behavior.
type QueryHandler struct {
	worker *engine.Worker
}

func NewQueryHandler(worker *engine.Worker) *QueryHandler {
	return &QueryHandler{
		worker: worker,
	}
}

// Query handles POST /query. The correlation id is caller-assigned and
// echoed back verbatim; when the caller omits it, one is assigned here so
// every response is correlatable.
func (h *QueryHandler) Query(c *gin.Context) {
	var req entities.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	resp, err := h.worker.Dispatch(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
