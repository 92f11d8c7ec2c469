package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parmaworld/parmaworld-api/controllers"
)

func MedicineRoutes(server *gin.Engine, medicines *controllers.MedicineController, mw Middleware) {
	server.GET("/allMedicines", medicines.GetAllMedicines)
	server.GET("/medicines", medicines.GetMedicines)
	server.GET("/discount-products", medicines.GetDiscountProducts)
	server.POST("/medicines", mw.Auth, mw.Seller, medicines.CreateMedicine)
	server.PUT("/medicine/:id", mw.Auth, mw.Seller, medicines.UpdateMedicine)
	server.DELETE("/medicine/:id", mw.Auth, mw.Seller, medicines.DeleteMedicine)
	server.POST("/medicine-images", mw.Auth, mw.Seller, medicines.UploadImages)
}
