package routes

import (
	"time"

	"github.com/friendfinder/backend/internal/config"
	"github.com/friendfinder/backend/internal/handlers"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	friendHandler *handlers.FriendHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	chatHandler *handlers.ChatHandler,
	profileHandler *handlers.ProfileHandler,
	contactHandler *handlers.ContactHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public auth routes get a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Get("/verify", authHandler.Verify)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth operations sit outside the auth limiter group on purpose.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Put("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)

	// Public contact form
	api.Post("/contact", contactHandler.Submit)

	jwt := middleware.JWTProtected(cfg)
	notBlocked := middleware.NotBlocked(db)

	// Users
	api.Get("/users/me", jwt, userHandler.Me)
	api.Get("/users/search", jwt, userHandler.Search)
	api.Get("/users/:id", jwt, userHandler.GetByID)
	api.Get("/users/:id/activities", jwt, userHandler.Activities)
	api.Get("/users/:id/timeline", jwt, postHandler.Timeline)
	api.Get("/users/:id/interests", jwt, profileHandler.Interests)
	api.Get("/users/:id/languages", jwt, profileHandler.Languages)
	api.Get("/users/:id/educations", jwt, profileHandler.Educations)
	api.Get("/users/:id/work-experiences", jwt, profileHandler.WorkExperiences)

	// Profile
	api.Put("/profile", jwt, profileHandler.Update)
	api.Put("/profile/picture", jwt, profileHandler.UpdateProfilePicture)
	api.Put("/profile/background", jwt, profileHandler.UpdateBackgroundPicture)
	api.Post("/profile/interests", jwt, profileHandler.AddInterest)
	api.Post("/profile/languages", jwt, profileHandler.AddLanguage)
	api.Post("/profile/educations", jwt, profileHandler.AddEducation)
	api.Post("/profile/work-experiences", jwt, profileHandler.AddWorkExperience)
	api.Get("/countries", jwt, profileHandler.Countries)

	// Friends
	api.Post("/friends/requests/:id", jwt, notBlocked, friendHandler.Send)
	api.Put("/friends/requests/:id/accept", jwt, friendHandler.Accept)
	api.Delete("/friends/:id", jwt, friendHandler.Remove)
	api.Get("/friends", jwt, friendHandler.List)
	api.Get("/friends/page", jwt, friendHandler.Page)
	api.Get("/friends/requests/incoming", jwt, friendHandler.Incoming)
	api.Get("/friends/candidates", jwt, friendHandler.Candidates)

	// Posts and feeds
	api.Post("/posts", jwt, notBlocked, postHandler.Create)
	api.Get("/posts/feed", jwt, postHandler.Feed)
	api.Get("/posts/feed/images", jwt, postHandler.ImageFeed)
	api.Get("/posts/feed/videos", jwt, postHandler.VideoFeed)
	api.Get("/media/url", jwt, postHandler.MediaURL)
	api.Get("/posts/:id", jwt, postHandler.GetByID)
	api.Delete("/posts/:id", jwt, postHandler.Delete)
	api.Post("/posts/:id/reactions", jwt, notBlocked, postHandler.React)

	// Comments
	api.Post("/posts/:id/comments", jwt, notBlocked, commentHandler.Add)
	api.Get("/posts/:id/comments", jwt, commentHandler.ListByPost)
	api.Delete("/comments/:id", jwt, commentHandler.Delete)

	// Chats
	api.Post("/chats", jwt, notBlocked, chatHandler.Create)
	api.Get("/chats", jwt, chatHandler.List)
	api.Get("/chats/:id", jwt, chatHandler.GetByID)
	api.Post("/chats/messages", jwt, notBlocked, chatHandler.SendMessage)

	// Admin panel
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/block", adminHandler.BlockUser)
	admin.Put("/users/:id/unblock", adminHandler.UnblockUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Delete("/posts/:id", adminHandler.DeletePost)
	admin.Delete("/comments/:id", adminHandler.DeleteComment)
}
