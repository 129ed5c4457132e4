package api

import (
	"github.com/gofiber/fiber/v3"
	"github.com/meikuraledutech/skillgraph"
	"go.uber.org/zap"
)

// graphData serves the deduplicated knowledge graph. Store failures produce a
// plain-text 500 and no partial graph.
func (h *handlers) graphData(c fiber.Ctx) error {
	records, err := h.graph.EdgeRecords(c.Context())
	if err != nil {
		h.log.Error("fetch graph data", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error fetching graph data")
	}

	b := skillgraph.NewBuilder().AddAll(records)
	if n := b.Skipped(); n > 0 {
		h.log.Warn("skipped graph records without id", zap.Int("count", n), zap.Int("total", len(records)))
	}

	return c.JSON(b.Graph())
}
