package routes

import (
	"os"

	"MediBook/controllers"
	"MediBook/services"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {
	payments := services.NewPaymentService()
	diagnosis := services.NewDiagnosisService(os.Getenv("OPENAI_API_KEY"))

	//public
	r.POST("/patient/register", controllers.RegisterPatient)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Doctor(r)
	controllers.Patient(r)
	controllers.Appointment(r, payments)
	controllers.Reminder(r)
	controllers.Rating(r)
	controllers.EMR(r)
	controllers.Diagnosis(r, diagnosis)
}
