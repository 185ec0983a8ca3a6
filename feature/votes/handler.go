package votes

import (
	"errors"

	"gradevault/core/logger"
	"gradevault/core/middleware/auth"
	"gradevault/core/utils"
	"gradevault/feature/votes/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for votes.
type Handler struct {
	store  *Store
	logger *zap.Logger
	guard  fiber.Handler
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger, guard fiber.Handler) *Handler {
	return &Handler{store: store, logger: logger, guard: guard}
}

// RegisterRoutes registers the vote routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/votes", h.guard)
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// votePayload is the client-supplied vote body for create and update.
type votePayload struct {
	Label     string          `json:"label"`
	Value     *float64        `json:"value"`
	Subject   string          `json:"subject"`
	ExamType  string          `json:"examType"`
	CreatedAt utils.Timestamp `json:"createdAt"`
}

func (p *votePayload) validate() string {
	if p.Label == "" || p.Value == nil || p.Subject == "" || p.ExamType == "" || p.CreatedAt.IsZero() {
		return "label, value, subject, examType and createdAt are required"
	}
	return ""
}

// HandleCreate creates a new vote for the caller.
// @Summary Create Vote
// @Description Create a grade record owned by the authenticated user.
// @Tags votes
// @Accept json
// @Produce json
// @Param vote body votePayload true "Vote"
// @Success 201 {object} map[string]any "Created"
// @Failure 400 {object} map[string]string "Missing fields"
// @Security BearerAuth
// @Router /api/votes [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body votePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed vote payload"})
	}
	if msg := body.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	vote := models.Vote{
		OwnerID:   auth.OwnerID(c),
		Label:     body.Label,
		Subject:   body.Subject,
		ExamType:  body.ExamType,
		Value:     *body.Value,
		CreatedAt: body.CreatedAt.Time,
	}
	if err := h.store.Create(c.Context(), &vote); err != nil {
		l.Error("Vote creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create vote"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "vote created",
		"vote":    vote,
	})
}

// HandleList returns the caller's votes, newest first.
// @Summary List Votes
// @Description List every grade record owned by the authenticated user.
// @Tags votes
// @Produce json
// @Success 200 {array} models.Vote "Votes"
// @Security BearerAuth
// @Router /api/votes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	list, err := h.store.ListByOwner(c.Context(), auth.OwnerID(c))
	if err != nil {
		l.Error("Vote listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list votes"})
	}
	if list == nil {
		list = []models.Vote{}
	}
	return c.JSON(list)
}

// HandleUpdate replaces every field of an owned vote.
// @Summary Update Vote
// @Description Full update of a grade record owned by the authenticated user.
// @Tags votes
// @Accept json
// @Produce json
// @Param id path string true "Vote ID"
// @Param vote body votePayload true "Vote"
// @Success 200 {object} map[string]any "Updated"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /api/votes/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	ownerID := auth.OwnerID(c)

	var body votePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed vote payload"})
	}
	if msg := body.validate(); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	vote, err := h.store.Get(c.Context(), ownerID, c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "vote not found"})
	}
	if err != nil {
		l.Error("Vote lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load vote"})
	}

	vote.Label = body.Label
	vote.Value = *body.Value
	vote.Subject = body.Subject
	vote.ExamType = body.ExamType
	vote.CreatedAt = body.CreatedAt.Time

	if err := h.store.Update(c.Context(), vote); err != nil {
		l.Error("Vote update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update vote"})
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "vote updated",
		"vote":    vote,
	})
}

// HandleDelete removes an owned vote.
// @Summary Delete Vote
// @Description Delete a grade record owned by the authenticated user.
// @Tags votes
// @Produce json
// @Param id path string true "Vote ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /api/votes/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	err := h.store.Delete(c.Context(), auth.OwnerID(c), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "vote not found"})
	}
	if err != nil {
		l.Error("Vote deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete vote"})
	}

	return c.JSON(fiber.Map{"message": "vote deleted"})
}
