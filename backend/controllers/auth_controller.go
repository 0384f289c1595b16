package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studytrack/backend/config"
	"studytrack/backend/identity"
	"studytrack/backend/session"
	"studytrack/backend/utils"
)

type AuthController struct {
	Directory *identity.Directory
	Binder    *session.Binder
	Cfg       *config.Config
}

func NewAuthController(dir *identity.Directory, binder *session.Binder, cfg *config.Config) *AuthController {
	return &AuthController{Directory: dir, Binder: binder, Cfg: cfg}
}

// Login godoc
// @Summary Learner login
// @Description Authenticates against the identity directory, binds the session and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	learner, err := ac.Directory.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not authenticate")
	}

	if err := ac.Binder.OnLogin(learner); err != nil {
		return utils.InternalServerError(c, "Could not bind session")
	}

	token, err := utils.GenerateSessionToken(learner.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  learner,
	})
}

// Logout godoc
// @Summary Learner logout
// @Description Clears the session binding; persisted progress survives for the next login
// @Tags auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if _, err := boundIdentity(c, ac.Binder); err != nil {
		return err
	}
	ac.Binder.OnLogout()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"loggedOut": true})
}
