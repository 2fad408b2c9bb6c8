package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/NiruddeshJatra/mentorship-platform/internal/core/domain"
)

type RouterDeps struct {
	Log          logrus.FieldLogger
	Tokens       TokenParser
	RateLimit    gin.HandlerFunc // optional
	CORSOrigins  []string
	Bookings     *BookingHandler
	Reschedules  *RescheduleHandler
	Reviews      *ReviewHandler
	Availability *AvailabilityHandler
	Expertise    *ExpertiseHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(d.Log), CORS(d.CORSOrigins))
	if d.RateLimit != nil {
		r.Use(d.RateLimit)
	}

	health := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	r.GET("/health", health)
	r.HEAD("/health", health)

	api := r.Group("/api")

	// public reads
	api.GET("/mentors/:id/availability", d.Availability.ListAvailable)
	api.GET("/reviews/mentor/:id", d.Reviews.ListForMentor)

	authed := api.Group("", Authenticate(d.Tokens))
	mentorOnly := RequireRole(domain.RoleMentor)
	menteeOnly := RequireRole(domain.RoleMentee)

	bookings := authed.Group("/bookings")
	bookings.POST("", menteeOnly, d.Bookings.CreateBooking)
	bookings.GET("", d.Bookings.ListBookings)
	bookings.GET("/:id", d.Bookings.GetBooking)
	bookings.PATCH("/:id/approve", mentorOnly, d.Bookings.ApproveBooking)
	bookings.PATCH("/:id/reject", mentorOnly, d.Bookings.RejectBooking)
	bookings.PATCH("/:id/cancel", d.Bookings.CancelBooking)
	bookings.PATCH("/:id/complete", mentorOnly, d.Bookings.CompleteBooking)
	bookings.GET("/:id/reschedules", d.Reschedules.ListForBooking)

	reschedule := authed.Group("/reschedule")
	reschedule.POST("", d.Reschedules.Propose)
	reschedule.PATCH("/:id/accept", d.Reschedules.Accept)
	reschedule.PATCH("/:id/reject", d.Reschedules.Reject)

	authed.POST("/reviews", menteeOnly, d.Reviews.CreateReview)
	authed.GET("/reviews/booking/:id", d.Reviews.GetForBooking)

	mentors := authed.Group("/mentors", mentorOnly)
	mentors.GET("/availability", d.Availability.ListMySlots)
	mentors.POST("/availability", d.Availability.CreateSlot)
	mentors.PUT("/availability/:id", d.Availability.UpdateSlot)
	mentors.DELETE("/availability/:id", d.Availability.CancelSlot)
	mentors.GET("/expertise", d.Expertise.ListExpertise)
	mentors.POST("/expertise", d.Expertise.AddExpertise)
	mentors.PUT("/expertise/:id", d.Expertise.UpdateExpertise)
	mentors.DELETE("/expertise/:id", d.Expertise.DeleteExpertise)

	return r
}
