package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/database"
	bookingRepoPkg "medibook/database/repository/booking"
	contactRepoPkg "medibook/database/repository/contact"
	doctorRepoPkg "medibook/database/repository/doctor"
	optionRepoPkg "medibook/database/repository/option"
	paymentRepoPkg "medibook/database/repository/payment"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/services/contact"
	"medibook/services/doctor"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	optionRepo := optionRepoPkg.NewMongoOptionRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Options:  optionRepo,
		Bookings: bookingRepo,
	}
	bookingSvc := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Payments: paymentRepo,
	}
	userSvc := &user.DefaultUserService{Repo: userRepo}
	doctorSvc := &doctor.DefaultDoctorService{Repo: doctorRepo}
	contactSvc := &contact.DefaultContactService{Repo: contactRepo}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc)
	bookingHandler := handlers.NewBookingHandler(bookingSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	doctorHandler := handlers.NewDoctorHandler(doctorSvc)
	contactHandler := handlers.NewContactHandler(contactSvc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		PostContact: contactHandler.PostContact,

		GetAppointmentOptions:   availabilityHandler.GetAppointmentOptions,
		GetAppointmentOptionsV2: availabilityHandler.GetAppointmentOptionsV2,
		GetAppointmentSpecialty: availabilityHandler.GetAppointmentSpecialty,

		GetBookings:         bookingHandler.GetBookings,
		GetBookingByID:      bookingHandler.GetBookingByID,
		PostBooking:         bookingHandler.PostBooking,
		CreatePaymentIntent: bookingHandler.CreatePaymentIntent,
		PostPayment:         bookingHandler.PostPayment,

		GetJWT:              userHandler.GetJWT,
		GetUsers:            userHandler.GetUsers,
		PostUser:            userHandler.PostUser,
		GetUserAdminByEmail: userHandler.GetUserAdminByEmail,
		PutUserAdminByID:    userHandler.PutUserAdminByID,

		GetDoctors:       doctorHandler.GetDoctors,
		PostDoctor:       doctorHandler.PostDoctor,
		DeleteDoctorByID: doctorHandler.DeleteDoctorByID,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
