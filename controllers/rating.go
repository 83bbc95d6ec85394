package controllers

import (
	"MediBook/apperrors"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"
)

func Rating(c *gin.Engine) {
	rating := c.Group("rating")
	{
		rating.POST("/create/:doctorId", authorization.Authorize("rating", "create"), CreateRating)
		rating.GET("/fetchAll/:doctorId", authorization.Authorize("rating", "view"), FetchDoctorRatings)
		rating.POST("/review/:ratingId", authorization.Authorize("rating", "update"), CreateReview)
		rating.PATCH("/review/update/:ratingId", authorization.Authorize("rating", "update"), UpdateReview)
		rating.DELETE("/review/delete/:ratingId", authorization.Authorize("rating", "update"), DeleteReview)
	}
}

/*
* Get doctorId from param
* Bind JSON and pass to the service
 */
func CreateRating(c *gin.Context) {
	doctorId := c.Param("doctorId")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	rating, err := services.CreateRating(c, doctorId, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(rating))
}

/*
* Get doctorId from param
* Pass to the service
 */
func FetchDoctorRatings(c *gin.Context) {
	doctorId := c.Param("doctorId")
	ratings, err := services.FetchDoctorRatings(c, doctorId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(ratings))
}

/*
* Get ratingId from param
* Bind JSON and pass to the service
 */
func CreateReview(c *gin.Context) {
	ratingId := c.Param("ratingId")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	response, err := services.CreateReview(c, ratingId, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(response))
}

func UpdateReview(c *gin.Context) {
	ratingId := c.Param("ratingId")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(400, util.FailedResponse(err))
		return
	}
	response, err := services.UpdateReview(c, ratingId, data)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(response))
}

/*
* Delete clears the review text, the rating stays
 */
func DeleteReview(c *gin.Context) {
	ratingId := c.Param("ratingId")
	response, err := services.DeleteReview(c, ratingId)
	if err != nil {
		c.JSON(apperrors.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(200, util.SuccessResponse(response))
}
