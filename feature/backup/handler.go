package backup

import (
	"errors"

	"gradevault/core/logger"
	"gradevault/core/middleware/auth"
	"gradevault/core/reconcile"
	"gradevault/core/utils"
	"gradevault/feature/votes/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backup and restore.
type Handler struct {
	service *Service
	logger  *zap.Logger
	guard   fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger, guard fiber.Handler) *Handler {
	return &Handler{service: service, logger: logger, guard: guard}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/backup", h.guard)
	group.Get("/", h.HandleExport)
	group.Post("/", h.HandleRestore)
}

// restoreVote is one client-side record in a restore payload. ownerId is
// accepted but never trusted; the engine rewrites it.
type restoreVote struct {
	LogicalID string          `json:"logicalId"`
	OwnerID   string          `json:"ownerId"`
	Label     string          `json:"label"`
	Value     float64         `json:"value"`
	Subject   string          `json:"subject"`
	ExamType  string          `json:"examType"`
	CreatedAt utils.Timestamp `json:"createdAt"`
}

// restoreRequest is the restore payload. Votes is a pointer so a missing
// or null field is distinguishable from an empty list.
type restoreRequest struct {
	Votes    *[]restoreVote `json:"votes"`
	Priority string         `json:"priority"`
}

// restoreResponse confirms a committed restore.
type restoreResponse struct {
	Message        string `json:"message"`
	VotesCount     int    `json:"votesCount"`
	CommittedCount int    `json:"committedCount"`
}

// HandleExport returns the caller's records for the client to back up.
// @Summary Export Backup
// @Description Export every grade record owned by the authenticated user, newest first.
// @Tags backup
// @Produce json
// @Success 200 {array} models.Vote "Records"
// @Security BearerAuth
// @Router /api/backup [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	list, err := h.service.Export(c.Context(), auth.OwnerID(c))
	if err != nil {
		l.Error("Backup export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to export backup"})
	}
	if list == nil {
		list = []models.Vote{}
	}
	return c.JSON(list)
}

// HandleRestore reconciles a client backup with the server's records.
// @Summary Restore Backup
// @Description Restore a backup. The submitted snapshot is merged with the server snapshot under the requested policy ("replace", "backup" = client wins, "server" = server wins) and atomically replaces the stored records.
// @Tags backup
// @Accept json
// @Produce json
// @Param backup body restoreRequest true "Backup payload"
// @Success 200 {object} restoreResponse "Restore result"
// @Failure 400 {object} map[string]string "Invalid payload or policy"
// @Failure 500 {object} map[string]string "Storage failure, no changes applied"
// @Security BearerAuth
// @Router /api/backup [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	ownerID := auth.OwnerID(c)

	var req restoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid backup payload"})
	}
	if req.Votes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "votes must be a list"})
	}

	policy, err := reconcile.ParsePolicy(req.Priority)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown restore priority"})
	}

	snapshot := make(reconcile.Snapshot, len(*req.Votes))
	for i, v := range *req.Votes {
		snapshot[i] = reconcile.Record{
			LogicalID: v.LogicalID,
			OwnerID:   v.OwnerID,
			Label:     v.Label,
			Subject:   v.Subject,
			ExamType:  v.ExamType,
			Value:     v.Value,
			CreatedAt: v.CreatedAt.Time,
		}
	}

	count, err := h.service.Restore(c.Context(), ownerID, snapshot, policy)
	switch {
	case errors.Is(err, reconcile.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid restore request"})
	case errors.Is(err, reconcile.ErrStorageFailure):
		l.Error("Restore failed", zap.Stringer("policy", policy), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "restore failed, previous records were preserved; please retry",
		})
	case err != nil:
		l.Error("Restore failed", zap.Stringer("policy", policy), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.JSON(restoreResponse{
		Message:        "backup restored (" + policy.String() + ")",
		VotesCount:     count,
		CommittedCount: count,
	})
}
