package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

// SetupRouter wires the controllers into the route table.
func SetupRouter(
	cfg *config.Config,
	authCtl *controllers.AuthController,
	adminCtl *controllers.AdminController,
	roomCtl *controllers.RoomController,
	hostelerCtl *controllers.HostelerController,
	verifyJWT gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := cfg.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/register", adminCtl.Register)
			admin.POST("/login", authCtl.Login)

			protected := admin.Group("", verifyJWT)
			{
				protected.POST("/logout", authCtl.Logout)
				protected.POST("/change-password", adminCtl.ChangePassword)
				protected.PATCH("/update-account", adminCtl.UpdateAccount)
				protected.GET("/excel-download", adminCtl.DownloadExcel)
				protected.DELETE("/:adminId", adminCtl.Delete)
			}
		}

		room := api.Group("/room", verifyJWT)
		{
			room.POST("/registerroom", roomCtl.Register)
			room.GET("/available-rooms", roomCtl.Available)
			room.GET("/room-availability/:roomId", roomCtl.CheckAvailability)
			room.PATCH("/:roomId", roomCtl.Update)
			room.DELETE("/:roomId", roomCtl.Delete)
		}

		hosteler := api.Group("/hosteler", verifyJWT)
		{
			hosteler.GET("/all", hostelerCtl.All)
			hosteler.POST("/register", hostelerCtl.Register)
			hosteler.PATCH("/updateDetails/:hostelerId", hostelerCtl.Update)
			hosteler.PATCH("/paid/:hostelerId", hostelerCtl.MarkPaid)
			hosteler.GET("/paid-hostelers/details", hostelerCtl.Paid)
			hosteler.GET("/unpaid-hostelers/details", hostelerCtl.Unpaid)
			hosteler.GET("/:hostelerId", hostelerCtl.Details)
			hosteler.DELETE("/:hostelerId", hostelerCtl.Delete)
		}
	}

	return r
}
