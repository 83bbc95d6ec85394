package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Patient(c *gin.Engine) {
	patient := c.Group("patient")
	{
		patient.GET("/fetch", authorization.Authorize("patient", "view"), FetchMyProfile)
		patient.GET("/fetch/:patientId", authorization.Authorize("patient", "view"), FetchPatientByCode)
		patient.PATCH("/update", authorization.Authorize("patient", "update"), UpdatePatient)
	}
}

/*
* Public registration endpoint
* Bind JSON and pass to the service
 */
func RegisterPatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	code, err := services.RegisterPatient(c, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(code))
}

/*
* The acting user's own profile
 */
func FetchMyProfile(c *gin.Context) {
	patient, err := services.FetchMyProfile(c)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(patient))
}

/*
* Get patientId from param
* Pass to the service
 */
func FetchPatientByCode(c *gin.Context) {
	patientId := c.Param("patientId")
	patient, err := services.FetchPatientByCode(c, patientId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(patient))
}

/*
* Bind the data from the input document
* Pass to the service
 */
func UpdatePatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdatePatient(c, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(updated))
}
