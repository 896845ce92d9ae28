package http

import (
	"github.com/gin-gonic/gin"

	"github.com/omxqn/api-application/internal/http/handlers"
	"github.com/omxqn/api-application/internal/http/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Auth         *handlers.AuthHandlers
	Registration *handlers.RegistrationHandlers
	Invitations  *handlers.InvitationHandlers
	Fleet        *handlers.FleetHandlers
	Uploads      *handlers.UploadHandlers
	Admin        *handlers.AdminHandlers
	Content      *handlers.ContentHandlers
	Stream       *handlers.WSHandlers
	AuthMW       *middleware.AuthMW
	CasbinMW     *middleware.CasbinMW
}

// BuildRouter wires all routes with their middleware chains.
func BuildRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Registration.Register)
		auth.POST("/register/type", d.Registration.SetRegisterType)
		auth.POST("/register/complete", d.Registration.CompleteProfile)
		auth.POST("/login", d.Auth.Login)
		auth.POST("/validate-otp", d.Auth.ValidateOTP)
	}

	r.GET("/sliders", d.Content.Sliders)
	r.GET("/buses/:id/location/stream", d.Stream.StreamLocation)

	// Authenticated routes, role-checked by the policy engine
	api := r.Group("/")
	api.Use(d.AuthMW.WithToken(), d.CasbinMW.Enforce())
	{
		api.POST("/auth/logout", d.Auth.Logout)
		api.GET("/me", d.Auth.Me)
		api.GET("/main-screen", d.Content.MainScreen)

		api.POST("/uploads/passport", d.Uploads.UploadPassport)
		api.POST("/uploads/idcard", d.Uploads.UploadIDCard)

		api.POST("/buses", d.Fleet.RegisterBus)
		api.GET("/buses", d.Fleet.ListBuses)
		api.GET("/buses/:id/location", d.Fleet.Location)
		api.GET("/buses/:id/drivers", d.Fleet.BusDrivers)
		api.POST("/buses/location", d.Fleet.ReportLocation)

		api.POST("/trips", d.Fleet.CreateTrip)
		api.GET("/trips/previous", d.Fleet.PreviousTrips)
		api.GET("/trips/upcoming", d.Fleet.UpcomingTrips)
		api.POST("/trips/:id/stops", d.Fleet.AddStop)
		api.GET("/trips/:id/stops", d.Fleet.TripStops)

		api.POST("/invitations", d.Invitations.Create)
		api.GET("/invitations/pending", d.Invitations.ListPending)
		api.POST("/invitations/:id/reply", d.Invitations.Reply)
	}

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(d.AuthMW.WithToken(), d.AuthMW.MinRole("admin"))
	{
		admin.POST("/roles", d.Admin.SetSystemRole)
		admin.GET("/policies", d.Admin.ListPolicies)
		admin.POST("/policies", d.Admin.AddPolicy)
		admin.DELETE("/policies", d.Admin.RemovePolicy)
	}

	return r
}
