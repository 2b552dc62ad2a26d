package controller

import (
	"net/http"
	"strconv"

	"github.com/fzscripts/fzscripts/database/model"
	"github.com/fzscripts/fzscripts/logger"
	"github.com/fzscripts/fzscripts/web/service"
	"github.com/fzscripts/fzscripts/web/session"

	"github.com/gin-gonic/gin"
)

// ScriptForm represents the script publication request body.
type ScriptForm struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Language    string `json:"language" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// ScriptController handles script listing, publication and downloads.
type ScriptController struct {
	BaseController

	scriptService service.ScriptService
}

// NewScriptController creates a new ScriptController and initializes its routes.
func NewScriptController(g *gin.RouterGroup) *ScriptController {
	a := &ScriptController{}
	a.initRouter(g)
	return a
}

func (a *ScriptController) initRouter(g *gin.RouterGroup) {
	g.GET("/scripts", a.list)
	g.GET("/scripts/user/:userId", a.listByUser)
	g.GET("/scripts/:id", a.get)
	g.POST("/scripts", a.checkLogin, a.create)
	g.POST("/scripts/:id/download", a.download)
}

func (a *ScriptController) list(c *gin.Context) {
	scripts, err := a.scriptService.GetScripts(c.Request.Context())
	if err != nil {
		logger.Warning("list scripts err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to fetch scripts")
		return
	}
	c.JSON(http.StatusOK, scripts)
}

func (a *ScriptController) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid script ID")
		return
	}

	script, err := a.scriptService.GetScript(c.Request.Context(), id)
	if err == service.ErrNotFound {
		jsonError(c, http.StatusNotFound, "Script not found")
		return
	} else if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch script")
		return
	}
	c.JSON(http.StatusOK, script)
}

func (a *ScriptController) listByUser(c *gin.Context) {
	userId, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	scripts, err := a.scriptService.GetScriptsByUser(c.Request.Context(), userId)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to fetch user scripts")
		return
	}
	c.JSON(http.StatusOK, scripts)
}

// create publishes a script owned by the session user.
func (a *ScriptController) create(c *gin.Context) {
	var form ScriptForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonError(c, http.StatusBadRequest, "Title, description, code, language and category are required")
		return
	}

	userId, _ := session.GetLoginUserId(c)
	script := &model.Script{
		Title:       form.Title,
		Description: form.Description,
		Code:        form.Code,
		Language:    form.Language,
		Category:    form.Category,
		UserId:      userId,
	}
	if err := a.scriptService.CreateScript(c.Request.Context(), script); err != nil {
		logger.Warning("create script err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to create script")
		return
	}
	c.JSON(http.StatusCreated, script)
}

// download records a download and returns the updated script.
func (a *ScriptController) download(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid script ID")
		return
	}

	script, err := a.scriptService.RecordDownload(c.Request.Context(), id)
	if err == service.ErrNotFound {
		jsonError(c, http.StatusNotFound, "Script not found")
		return
	} else if err != nil {
		logger.Warning("record download err:", err)
		jsonError(c, http.StatusInternalServerError, "Failed to update script downloads")
		return
	}
	c.JSON(http.StatusOK, script)
}
