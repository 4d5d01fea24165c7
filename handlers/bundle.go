package handlers

import (
	userRepo "medibook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler plus the user repository the
// admin gate needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Contact endpoints.
	PostContact gin.HandlerFunc

	// Availability endpoints.
	GetAppointmentOptions   gin.HandlerFunc
	GetAppointmentOptionsV2 gin.HandlerFunc
	GetAppointmentSpecialty gin.HandlerFunc

	// Booking and payment endpoints.
	GetBookings         gin.HandlerFunc
	GetBookingByID      gin.HandlerFunc
	PostBooking         gin.HandlerFunc
	CreatePaymentIntent gin.HandlerFunc
	PostPayment         gin.HandlerFunc

	// User and token endpoints.
	GetJWT              gin.HandlerFunc
	GetUsers            gin.HandlerFunc
	PostUser            gin.HandlerFunc
	GetUserAdminByEmail gin.HandlerFunc
	PutUserAdminByID    gin.HandlerFunc

	// Doctor endpoints.
	GetDoctors       gin.HandlerFunc
	PostDoctor       gin.HandlerFunc
	DeleteDoctorByID gin.HandlerFunc
}
