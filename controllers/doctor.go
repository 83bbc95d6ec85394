package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Doctor(c *gin.Engine) {
	doctor := c.Group("doctor")
	{
		doctor.POST("/create", authorization.Authorize("doctor", "create"), CreateDoctor)
		doctor.GET("/search", authorization.Authorize("doctor", "view"), SearchDoctorsBySpeciality)
		doctor.GET("/searchByName", authorization.Authorize("doctor", "view"), SearchDoctorsByName)
		doctor.GET("/fetch/:doctorId", authorization.Authorize("doctor", "view"), FetchDoctorByCode)
		doctor.GET("/appointments/:doctorId", authorization.Authorize("appointment", "view"), FetchDoctorAppointments)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateDoctor(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	code, err := services.CreateDoctor(c, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(code))
}

/*
* Speciality and coordinates from query params
* Pass to the service
 */
func SearchDoctorsBySpeciality(c *gin.Context) {
	speciality := c.Query("speciality")
	coordinates := c.Query("coordinates")
	doctors, err := services.SearchDoctorsBySpeciality(c, speciality, coordinates)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}

/*
* Name and speciality from query params, at least one required
* Pass to the service
 */
func SearchDoctorsByName(c *gin.Context) {
	name := c.Query("name")
	speciality := c.Query("speciality")
	doctors, err := services.SearchDoctorsByName(c, name, speciality)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctors))
}

/*
* Get doctorId from param
* Pass to the service
 */
func FetchDoctorByCode(c *gin.Context) {
	doctorId := c.Param("doctorId")
	doctor, err := services.FetchDoctorByCode(c, doctorId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(doctor))
}

/*
* Get doctorId from param
* Pass to the service
 */
func FetchDoctorAppointments(c *gin.Context) {
	doctorId := c.Param("doctorId")
	appointments, err := services.FetchDoctorAppointments(c, doctorId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(appointments))
}
