package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Reminder(c *gin.Engine) {
	reminder := c.Group("reminder")
	{
		reminder.POST("/create", authorization.Authorize("reminder", "create"), CreateReminder)
		reminder.GET("/fetchAll", authorization.Authorize("reminder", "view"), FetchReminders)
		reminder.PATCH("/update/:reminderId", authorization.Authorize("reminder", "update"), UpdateReminder)
		reminder.PATCH("/activate/:reminderId", authorization.Authorize("reminder", "update"), ActivateReminder)
		reminder.PATCH("/deactivate/:reminderId", authorization.Authorize("reminder", "update"), DeactivateReminder)
		reminder.DELETE("/delete/:reminderId", authorization.Authorize("reminder", "delete"), DeleteReminder)
	}
}

/*
* Bind JSON
* And pass to the service
 */
func CreateReminder(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	reminder, err := services.CreateReminder(c, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(reminder))
}

/*
* The acting patient's own reminder list
 */
func FetchReminders(c *gin.Context) {
	reminders, err := services.FetchReminders(c)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(reminders))
}

/*
* Get reminderId from param
* Bind the data from the input document
* Pass to the service
 */
func UpdateReminder(c *gin.Context) {
	reminderId := c.Param("reminderId")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateReminder(c, reminderId, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(updated))
}

func ActivateReminder(c *gin.Context) {
	reminderId := c.Param("reminderId")
	updated, err := services.SetReminderActive(c, reminderId, true)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(updated))
}

func DeactivateReminder(c *gin.Context) {
	reminderId := c.Param("reminderId")
	updated, err := services.SetReminderActive(c, reminderId, false)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(updated))
}

/*
* Get reminderId from param
* Pass to the service
 */
func DeleteReminder(c *gin.Context) {
	reminderId := c.Param("reminderId")
	deleted, err := services.DeleteReminder(c, reminderId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(deleted))
}
