package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func EMR(c *gin.Engine) {
	emr := c.Group("emr")
	{
		emr.GET("/fetch/:appointmentId", authorization.Authorize("emr", "view"), FetchEMRByAppointment)
		emr.GET("/fetchAll", authorization.Authorize("emr", "view"), FetchMyEMRs)
	}
}

/*
* Get appointmentId from param
* Pass to the service
 */
func FetchEMRByAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	emr, err := services.FetchEMRByAppointment(c, appointmentId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(emr))
}

/*
* The acting patient's medical records
 */
func FetchMyEMRs(c *gin.Context) {
	emrs, err := services.FetchMyEMRs(c)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(emrs))
}
