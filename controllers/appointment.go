package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Appointment(c *gin.Engine, payments *services.PaymentService) {
	appointment := c.Group("appointment")
	{
		appointment.POST("/book/:doctorId", authorization.Authorize("appointment", "create"), BookAppointment(payments))
		appointment.GET("/fetch/:appointmentId", authorization.Authorize("appointment", "view"), FetchAppointmentByCode)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchMyAppointments)
	}
}

/*
* Get doctorId from param
* Bind JSON and pass to the booking workflow
* The payment collaborator comes in via the closure
 */
func BookAppointment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorId := c.Param("doctorId")
		var data map[string]interface{}
		if err := c.BindJSON(&data); err != nil {
			c.JSON(400, util.FailedResponse(err))
			return
		}
		response, err := services.BookAppointment(c, payments, doctorId, data)
		if err != nil {
			c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
			return
		}
		c.JSON(200, util.SuccessResponse(response))
	}
}

/*
* Get appointmentId from param
* Pass to the service
 */
func FetchAppointmentByCode(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	appointment, err := services.FetchAppointmentByCode(c, appointmentId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointment))
}

/*
* The acting patient's appointments
 */
func FetchMyAppointments(c *gin.Context) {
	appointments, err := services.FetchMyAppointments(c)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointments))
}
