package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fbs/controllers"
	middlewares "fbs/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.RequestLogger())

	// Đơn đặt phòng: sinh viên và giảng viên tạo, admin chỉ xem
	v1.POST("/booking", middlewares.AuthMiddleware(0, 1), controllers.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(0, 1, 2), controllers.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(0, 1, 2), controllers.GetBookingDetail)
	v1.GET("/bookingPending", middlewares.AuthMiddleware(1, 2), controllers.GetPendingBookings)
	v1.PUT("/bookingApprove", middlewares.AuthMiddleware(1, 2), controllers.ApproveBooking)
	v1.PUT("/bookingReject", middlewares.AuthMiddleware(1, 2), controllers.RejectBooking)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(0, 1), controllers.CancelBooking)
	v1.PUT("/bookingCheckin", middlewares.AuthMiddleware(0, 1), controllers.CheckInBooking)
	v1.PUT("/bookingCheckout", middlewares.AuthMiddleware(0, 1), controllers.CheckOutBooking)
	v1.GET("/bookingGate/:id", middlewares.AuthMiddleware(0, 1, 2), controllers.GetCheckInGate)

	// Phòng
	v1.GET("/facility", controllers.GetFacilities)
	v1.GET("/facility/:id", controllers.GetDetailFacility)
	v1.GET("/facilitySearch", controllers.SearchFacilities)
	v1.POST("/facility", middlewares.AuthMiddleware(2), controllers.CreateFacility)
	v1.PUT("/facilityUpdate", middlewares.AuthMiddleware(2), controllers.UpdateFacility)
	v1.PUT("/facilityStatus", middlewares.AuthMiddleware(2), controllers.ChangeFacilityStatus)

	// Cơ sở
	v1.GET("/campus", controllers.GetCampuses)
	v1.GET("/campus/:id", controllers.GetDetailCampus)
	v1.POST("/campus", middlewares.AuthMiddleware(2), controllers.CreateCampus)
	v1.PUT("/campusUpdate", middlewares.AuthMiddleware(2), controllers.UpdateCampus)

	// Kỳ nghỉ
	v1.GET("/holidays", controllers.GetHolidays)
	v1.POST("/holidays", middlewares.AuthMiddleware(2), controllers.CreateHoliday)
	v1.PUT("/holidaysUpdate", middlewares.AuthMiddleware(2), controllers.UpdateHoliday)
	v1.GET("/holidays/:id", controllers.GetDetailHoliday)
	v1.DELETE("/holidays/:id", middlewares.AuthMiddleware(2), controllers.DeleteHoliday)

	// Sự cố phòng
	v1.POST("/issueReport", middlewares.AuthMiddleware(0, 1), controllers.ReportIssue)
	v1.PUT("/issueResolve/:id", middlewares.AuthMiddleware(2), controllers.ResolveIssue)
	v1.GET("/issue/:id", middlewares.AuthMiddleware(0, 1, 2), controllers.GetIssueDetail)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})
}
