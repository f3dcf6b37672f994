package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/api/handlers"
	"github.com/linskybing/creative-desk/internal/api/routes"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/realtime"
	"github.com/linskybing/creative-desk/internal/repository"
)

func SetupRouter(repos *repository.Repos, svcs *application.Services, hub *realtime.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(svcs, hub), repos)
	return r
}
