package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"skatelog/models"
	"skatelog/services"
	"skatelog/utils"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	userService *services.UserService
}

func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{userService: userService}
}

func (ac *AuthController) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Form": models.SignupForm{},
	})
}

// Signup validates the form, creates the user and logs them straight
// in. Validation failures (a taken email included) redisplay the form.
func (ac *AuthController) Signup(c *gin.Context) {
	var form models.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Form":       form,
			"FormErrors": utils.FormErrors(err),
		})
		return
	}

	user, err := ac.userService.Register(&form)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.HTML(http.StatusOK, "signup.html", gin.H{
				"Form":       form,
				"FormErrors": map[string]string{"Email": "this email is already registered"},
			})
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	if !ac.startSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates by email and password. Any failure sends the
// requester back to the login page.
func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/accounts/login")
		return
	}

	user, err := ac.userService.Authenticate(form.Email, form.Password)
	if err != nil {
		c.Redirect(http.StatusFound, "/accounts/login")
		return
	}

	if !ac.startSession(c, user.ID) {
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/accounts/login")
}

// Profile renders a user's page with their posts.
func (ac *AuthController) Profile(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := ac.userService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "User not found")
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User": user,
	})
}

func (ac *AuthController) startSession(c *gin.Context, userID uint) bool {
	token, err := utils.GenerateJWT(userID)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to start session")
		return false
	}
	c.SetCookie(utils.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	return true
}
