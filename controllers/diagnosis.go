package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Diagnosis(c *gin.Engine, diagnosis *services.DiagnosisService) {
	group := c.Group("diagnosis")
	{
		group.POST("/symptoms", authorization.Authorize("diagnosis", "create"), DiagnoseSymptoms(diagnosis))
	}
}

/*
* Bind JSON, symptoms is free text
* The completion collaborator comes in via the closure
* The raw response text goes back unprocessed
 */
func DiagnoseSymptoms(diagnosis *services.DiagnosisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data map[string]interface{}
		if err := c.BindJSON(&data); err != nil {
			c.JSON(400, util.FailedResponse(err))
			return
		}
		symptoms, _ := data["symptoms"].(string)
		response, err := diagnosis.Diagnose(c, symptoms)
		if err != nil {
			c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
			return
		}
		c.JSON(200, util.SuccessResponse(response))
	}
}
