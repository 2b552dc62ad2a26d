package controller

import (
	"net/http"

	"github.com/fzscripts/fzscripts/logger"
	"github.com/fzscripts/fzscripts/web/service"
	"github.com/fzscripts/fzscripts/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request body.
type RegisterForm struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	ProfilePicture string `json:"profilePicture"`
}

// LoginForm represents the login request body.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles registration, login, logout and session queries.
type AuthController struct {
	BaseController

	userService service.UserService
}

// NewAuthController creates a new AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/user", a.currentUser)
	g.POST("/check-username", a.checkUsername)
}

// register creates an account and logs the new user in.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := a.userService.Register(c.Request.Context(), form.Username, form.Password, form.ProfilePicture)
	if err == service.ErrUsernameTaken {
		jsonError(c, http.StatusBadRequest, "Username already taken")
		return
	} else if err != nil {
		logger.Warning("register err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	logger.Infof("%s registered, IP: %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusCreated, user)
}

// login authenticates a username/password pair and establishes a session.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	user, err := a.userService.CheckUser(c.Request.Context(), form.Username, form.Password)
	if err == service.ErrInvalidCredentials {
		logger.Warningf("failed login for %q, IP: %s", form.Username, getRemoteIp(c))
		jsonError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	} else if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if err := session.SetLoginUser(c, user.Id); err != nil {
		logger.Warning("unable to save session:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, user)
}

// logout tears down the session. Logging out without a session is a no-op.
func (a *AuthController) logout(c *gin.Context) {
	if userId, ok := session.GetLoginUserId(c); ok {
		logger.Infof("user %d logged out", userId)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Status(http.StatusOK)
}

// currentUser returns the account bound to the session.
func (a *AuthController) currentUser(c *gin.Context) {
	userId, ok := session.GetLoginUserId(c)
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}

	user, err := a.userService.GetUserById(c.Request.Context(), userId)
	if err == service.ErrNotFound {
		// account vanished under a live session; drop the session
		_ = session.ClearSession(c)
		c.Status(http.StatusUnauthorized)
		return
	} else if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// checkUsername reports availability before a registration commits.
func (a *AuthController) checkUsername(c *gin.Context) {
	var form struct {
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" {
		jsonError(c, http.StatusBadRequest, "Username is required")
		return
	}

	available, err := a.userService.IsUsernameAvailable(c.Request.Context(), form.Username)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to check username availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}
