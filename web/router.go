package web

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"

	"grandywoods/auth"
	"grandywoods/config"
	"grandywoods/db"
	"grandywoods/handlers"
	"grandywoods/storage"
	"grandywoods/utils"
)

const sessionCookieName = "grandywoods_session"

// NewRouter wires every route of the site. db.Instance and storage.Default must be set up already.
func NewRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      config.DEBUG_MODE,
	}
	if config.TLS_DOMAINS != "" {
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{config.MEDIA_URL})))
	}

	sessionStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_SECRET))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.SESSION_MAX_AGE,
		Secure:   config.TLS_DOMAINS != "",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionCookieName, sessionStore))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual groups can override that

	router.SetHTMLTemplate(loadTemplates())

	// Assets
	static, _ := fs.Sub(staticFS, "static")
	router.Group("/static", (&utils.CacheRouter{CacheTime: utils.CacheMedia, Public: true}).Handler()).
		StaticFS("/", http.FS(static))
	if _, onDisk := storage.Default.(*storage.DiskStorage); onDisk {
		router.Group(config.MEDIA_URL, (&utils.CacheRouter{CacheTime: utils.CacheMedia, Public: true}).Handler()).
			Static("/", config.MEDIA_ROOT)
	}
	router.GET("/robots.txt", Robots)

	// Public pages
	router.GET("/", Home)
	router.GET("/about/", About)
	router.GET("/room/", Room)
	router.GET("/near-by-places/", NearByPlaces)
	router.GET("/near-by-places/:id/", NearByPlaceDetail)
	router.GET("/gallery/", Gallery)
	router.GET("/contact/", Contact)
	router.POST("/contact/", Contact)
	router.GET("/booking/", Booking)
	router.POST("/booking/", Booking)

	// JSON end-points
	chat := router.Group("/save-chat-message/", cors.New(chatCORSConfig()))
	chat.POST("", handlers.ChatMessageSave)
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions} {
		chat.Handle(method, "", handlers.ChatMessageBadMethod)
	}
	router.POST("/editor-upload/", handlers.EditorUpload)

	// Login
	router.GET(loginPath, Login)
	router.POST(loginPath, Login)
	router.GET("/logout-user/", Logout)

	// Admin back office
	admin := &auth.Router{Base: router, LoginPath: loginPath}
	admin.GET(dashboardPath, Dashboard)
	admin.GET("/contact-view/", ContactList)
	admin.POST("/delete-contact/:id/", ContactDelete)
	admin.GET("/booking-view/", BookingList)
	admin.POST("/delete-booking/:id/", BookingDelete)
	admin.Form("/add-near-by-place/", PlaceAdd)
	admin.GET("/view-near-by-place/", PlaceList)
	admin.Form("/update-near-by-place/:id/", PlaceUpdate)
	admin.POST("/delete-near-by-place/:id/", PlaceDelete)
	admin.Form("/add-client-review/", ReviewAdd)
	admin.GET("/view-client-reviews/", ReviewList)
	admin.Form("/update-client-review/:id/", ReviewUpdate)
	admin.POST("/delete-client-review/:id/", ReviewDelete)
	admin.Form("/add-folders/", FolderAdd)
	admin.GET("/view-folders/", FolderList)
	admin.Form("/update-folder/:id/", FolderUpdate)
	admin.POST("/delete-folder/:id/", FolderDelete)
	admin.Form("/add-images/", GalleryAdd)
	admin.GET("/view-images/", GalleryList)
	admin.Form("/update-image/:id/", GalleryUpdate)
	admin.POST("/delete-image/:id/", GalleryDelete)
	admin.Form("/add-price/", PriceSet)
	admin.GET("/view-chatbot-messages/", ChatMessageList)
	admin.POST("/delete-chatbot-message/:id/", ChatMessageDelete)
	admin.GET("/guests/", GuestList)
	admin.Form("/guests/add/", GuestAdd)
	admin.Form("/guests/update/:id/", GuestUpdate)
	admin.POST("/guests/delete/:id/", GuestDelete)

	router.NoRoute(NotFound)
	return router
}

func chatCORSConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	origins := strings.Split(config.CORS_ORIGINS, ",")
	if config.CORS_ORIGINS == "" || config.CORS_ORIGINS == "*" {
		cfg.AllowAllOrigins = true
	} else {
		for _, o := range origins {
			cfg.AllowOrigins = append(cfg.AllowOrigins, strings.TrimSpace(o))
		}
	}
	return cfg
}
