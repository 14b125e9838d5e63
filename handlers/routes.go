// routes.go - Route table shared by the server and the handler tests

package handlers

import (
	"go-traits-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Routes registers every endpoint on r.
func Routes(r *gin.Engine) {
	// Public routes (no authentication required)
	r.POST("/register", Register)
	r.POST("/login", Login)
	r.POST("/password", ForgottenPassword)
	r.POST("/password/reset", ResetPassword)
	r.GET("/forms/:name", DescribeForm)

	// Protected routes (require JWT authentication)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/users/search", SearchUsers)
		api.GET("/friends", ListFriends)
		api.POST("/friends", AddFriend)
		api.GET("/friends/:id/answers", FriendAnswers)
		api.GET("/questions", ListQuestions)
		api.POST("/questions/answer", AnswerQuestion)
		api.POST("/questions/:id/self", SelfAssess)
		api.GET("/traits", ListTraits)
		api.POST("/traits/import", ImportTraits)
	}

	// Admin routes (require the admin role)
	admin := r.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/questions", CreateQuestion)
	}
}
