package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Router is a wrapper class that only lets authenticated admin sessions through.
// Everybody else is sent to the login page.
type Router struct {
	Base      gin.IRoutes
	LoginPath string
}

func (cr *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	if !LoadSession(c).IsAdmin() {
		c.Redirect(http.StatusFound, cr.LoginPath+"?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}
	handler(c)
}

func (cr *Router) wrap(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		cr.baseExec(c, handler)
	}
}

func (cr *Router) GET(path string, handler gin.HandlerFunc) {
	cr.Base.GET(path, cr.wrap(handler))
}

func (cr *Router) POST(path string, handler gin.HandlerFunc) {
	cr.Base.POST(path, cr.wrap(handler))
}

// Form registers the handler for both GET (render) and POST (submit)
func (cr *Router) Form(path string, handler gin.HandlerFunc) {
	cr.GET(path, handler)
	cr.POST(path, handler)
}
