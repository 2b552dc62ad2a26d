package controller

import (
	"net/http"
	"strconv"

	"github.com/fzscripts/fzscripts/logger"
	"github.com/fzscripts/fzscripts/web/service"
	"github.com/fzscripts/fzscripts/web/session"

	"github.com/gin-gonic/gin"
)

// UserController handles public user lookups, profile updates and the
// admin-only verification toggle.
type UserController struct {
	BaseController

	userService service.UserService
}

// NewUserController creates a new UserController and initializes its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	// check-username must be registered before the generic :id routes
	g.GET("/users/check-username/:username", a.checkUsername)
	g.GET("/users/:id", a.get)
	g.POST("/users/:id/profile-picture", a.checkLogin, a.updateProfilePicture)
	g.POST("/users/:id/verify", a.checkLogin, a.verify)
}

func (a *UserController) checkUsername(c *gin.Context) {
	available, err := a.userService.IsUsernameAvailable(c.Request.Context(), c.Param("username"))
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to check username")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (a *UserController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := a.userService.GetUserById(c.Request.Context(), id)
	if err == service.ErrNotFound {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// updateProfilePicture lets a user change their own profile picture URL.
func (a *UserController) updateProfilePicture(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	userId, _ := session.GetLoginUserId(c)
	if userId != id {
		jsonError(c, http.StatusForbidden, "Not authorized to update this user's profile")
		return
	}

	var form struct {
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.ProfilePicture == "" {
		jsonError(c, http.StatusBadRequest, "Profile picture URL is required")
		return
	}

	user, err := a.userService.UpdateProfilePicture(c.Request.Context(), id, form.ProfilePicture)
	if err == service.ErrNotFound {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		logger.Warning("update profile picture err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update profile picture")
		return
	}
	c.JSON(http.StatusOK, user)
}

// verify toggles the verified badge on the target user. Admin only.
func (a *UserController) verify(c *gin.Context) {
	actingUserId, _ := session.GetLoginUserId(c)
	actingUser, err := a.userService.GetUserById(c.Request.Context(), actingUserId)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to update user verification status")
		return
	}
	if !actingUser.IsAdmin {
		jsonError(c, http.StatusForbidden, "Only admins can verify users")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var form struct {
		Verified *bool `json:"verified"`
	}
	if err := c.ShouldBindJSON(&form); err != nil || form.Verified == nil {
		jsonError(c, http.StatusBadRequest, "Verified status is required")
		return
	}

	user, err := a.userService.SetVerified(c.Request.Context(), actingUser, id, *form.Verified)
	if err == service.ErrForbidden {
		jsonError(c, http.StatusForbidden, "Only admins can verify users")
		return
	} else if err == service.ErrNotFound {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		logger.Warning("set verified err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update user verification status")
		return
	}
	c.JSON(http.StatusOK, user)
}
