package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studytrack/backend/progress"
	"studytrack/backend/session"
	"studytrack/backend/utils"
)

type ProgressController struct {
	Store  *progress.Store
	Binder *session.Binder
}

func NewProgressController(store *progress.Store, binder *session.Binder) *ProgressController {
	return &ProgressController{Store: store, Binder: binder}
}

// GetProgress godoc
// @Summary Get progress snapshot
// @Description Returns the learner's progress record and catalog with completion projected
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, pc.Binder); err != nil {
		return err
	}

	snap, err := pc.Store.CurrentSnapshot()
	if err != nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, snap)
}

// GetOverview godoc
// @Summary Get dashboard overview
// @Description Returns overall completion, the per-discipline table and the content-kind distribution
// @Tags progress
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetOverview(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, pc.Binder); err != nil {
		return err
	}

	overview, err := pc.Store.Overview()
	if err != nil {
		return utils.Unauthorized(c, "No active session")
	}

	resp := fiber.Map{"overview": overview}
	if pc.Store.PersistenceDegraded() {
		resp["warning"] = "progress may not survive a restart"
	}
	return utils.Success(c, fiber.StatusOK, resp)
}
