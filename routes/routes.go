package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints that need no token.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/contact", hb.PostContact)
	r.GET("/appointmentOptions", hb.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", hb.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", hb.GetAppointmentSpecialty)
	r.GET("/bookings/:id", hb.GetBookingByID)
	r.POST("/bookings", hb.PostBooking)
	r.POST("/create-payment-intent", hb.CreatePaymentIntent)
	r.POST("/payments", hb.PostPayment)
	r.GET("/jwt", hb.GetJWT)
	r.POST("/users", hb.PostUser)
	r.GET("/users/admin/:email", hb.GetUserAdminByEmail)
}

// RegisterProtectedRoutes registers the endpoints behind the auth gate.
// Admin endpoints additionally require the admin role; identity failures
// stay 401 while role failures are 403.
func RegisterProtectedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.VerifyJWT()
	admin := middleware.VerifyAdmin(hb.UserRepo)

	r.GET("/bookings", auth, hb.GetBookings)

	r.GET("/users", auth, admin, hb.GetUsers)
	r.PUT("/users/admin/:id", auth, admin, hb.PutUserAdminByID)
	r.GET("/doctors", auth, admin, hb.GetDoctors)
	r.POST("/doctors", auth, admin, hb.PostDoctor)
	r.DELETE("/doctors/:id", auth, admin, hb.DeleteDoctorByID)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "doctors portal is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterProtectedRoutes(r, hb)
}
