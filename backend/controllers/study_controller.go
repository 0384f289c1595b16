package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studytrack/backend/catalog"
	"studytrack/backend/progress"
	"studytrack/backend/session"
	"studytrack/backend/utils"
)

type StudyController struct {
	Store  *progress.Store
	Binder *session.Binder
}

func NewStudyController(store *progress.Store, binder *session.Binder) *StudyController {
	return &StudyController{Store: store, Binder: binder}
}

// GetItems godoc
// @Summary List study items
// @Description Returns the learner's catalog, optionally filtered by discipline and completion status
// @Tags study
// @Produce json
// @Param discipline query string false "Discipline label, or 'all'"
// @Param status query string false "completed or pending"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study/items [get]
func (sc *StudyController) GetItems(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, sc.Binder); err != nil {
		return err
	}

	status, ok := progress.ParseStatus(c.Query("status"))
	if !ok {
		return utils.BadRequest(c, "status must be 'completed' or 'pending'")
	}

	snap, err := sc.Store.CurrentSnapshot()
	if err != nil {
		return utils.Unauthorized(c, "No active session")
	}

	items := progress.FilterItems(snap.Items, progress.FilterOptions{
		Discipline: c.Query("discipline"),
		Status:     status,
	})
	return utils.Success(c, fiber.StatusOK, fiber.Map{"items": items})
}

// GetDisciplines godoc
// @Summary List disciplines
// @Description Returns the distinct discipline labels of the learner's catalog
// @Tags study
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study/disciplines [get]
func (sc *StudyController) GetDisciplines(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, sc.Binder); err != nil {
		return err
	}

	snap, err := sc.Store.CurrentSnapshot()
	if err != nil {
		return utils.Unauthorized(c, "No active session")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"disciplines": catalog.Disciplines(snap.Items)})
}

// ToggleItem godoc
// @Summary Toggle item completion
// @Description Flips an item's completion state and persists the updated progress
// @Tags study
// @Produce json
// @Param id path string true "Study item id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study/items/{id}/toggle [post]
func (sc *StudyController) ToggleItem(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, sc.Binder); err != nil {
		return err
	}

	completed, err := sc.Store.ToggleCompletion(c.Params("id"))
	if err != nil {
		if errors.Is(err, progress.ErrUnknownItem) {
			return utils.NotFound(c, "Study item not found")
		}
		return utils.Unauthorized(c, "No active session")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":        c.Params("id"),
		"completed": completed,
	})
}
