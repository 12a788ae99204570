package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"grandywoods/auth"
	"grandywoods/config"
)

const (
	loginPath     = "/login/"
	dashboardPath = "/dashboard/"
)

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func Login(c *gin.Context) {
	session := auth.LoadSession(c)
	if !isPost(c) {
		if session.IsAdmin() {
			c.Redirect(http.StatusFound, dashboardPath)
			return
		}
		render(c, http.StatusOK, "login.tmpl", gin.H{"Next": safeNext(c.Query("next"))})
		return
	}
	form := LoginForm{}
	_ = c.ShouldBind(&form)
	if !auth.CheckAdmin(form.Username, form.Password) {
		log.Warn().Str("ip", c.ClientIP()).Msg("failed admin login")
		session.Error("There was an error logging in, try again.")
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	if err := session.LoginAdmin(config.SESSION_MAX_AGE); err != nil {
		renderServerError(c, err)
		return
	}
	session.Success("Welcome back, Admin!")
	next := safeNext(form.Next)
	if next == "" {
		next = dashboardPath
	}
	c.Redirect(http.StatusFound, next)
}

func Logout(c *gin.Context) {
	session := auth.LoadSession(c)
	if err := session.LogoutAdmin(); err != nil {
		renderServerError(c, err)
		return
	}
	session.Success("You Were Logged Out")
	c.Redirect(http.StatusFound, loginPath)
}

func Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "admin_dashboard.tmpl", nil)
}

// safeNext only lets through local paths
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
