package routes

import (
	"skatelog/controllers"
	"skatelog/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, postController *controllers.PostController, authController *controllers.AuthController) {
	r.GET("/", postController.List)

	posts := r.Group("/posts")
	posts.Use(middleware.AuthRequired())
	{
		posts.GET("/create", postController.CreateForm)
		posts.POST("/create", postController.Create)
		posts.GET("/detail/:id", postController.Detail)
		posts.POST("/detail/:id", postController.SubmitComment)
		posts.GET("/delete/:id", postController.DeleteConfirm)
		posts.POST("/delete/:id", postController.Delete)
	}

	accounts := r.Group("/accounts")
	{
		guest := accounts.Group("")
		guest.Use(middleware.GuestOnly())
		{
			guest.GET("/signup", authController.SignupForm)
			guest.POST("/signup", authController.Signup)
			guest.GET("/login", authController.LoginForm)
			guest.POST("/login", authController.Login)
		}

		accounts.GET("/logout", authController.Logout)
		accounts.GET("/profile/:id", middleware.AuthRequired(), authController.Profile)
	}
}
