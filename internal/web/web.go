package web

import (
	"rulesconsole/auth"
	"rulesconsole/internal/web/api"
	"rulesconsole/internal/web/middleware"
	"rulesconsole/internal/web/store"

	"github.com/gin-gonic/gin"
)

// WebServer is the stub rules API used for local development and tests
type WebServer struct {
	router *gin.Engine
}

func NewWebServer(db *store.Store, JWTSecret string) *WebServer {
	router := gin.Default()

	authModule := auth.NewAuthModule(JWTSecret)
	middlewareManager := middleware.NewMiddlewareManager(authModule)

	api.RegisterUserRoutes(router, middlewareManager, db)
	api.RegisterDeviceRoutes(router, middlewareManager, db)
	api.RegisterRuleRoutes(router, middlewareManager, db)
	api.RegisterFileRoutes(router, middlewareManager, db)

	return &WebServer{router: router}
}

func (ws *WebServer) Start(addr string) {
	ws.router.Run(addr)
}

// Router exposes the gin engine so tests can serve it over httptest
func (ws *WebServer) Router() *gin.Engine {
	return ws.router
}
