package handlers

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the dashboard endpoints on an /api router.
func RegisterRoutes(api fiber.Router, post *PostHandler, content *ContentHandler) {
	api.Post("/generate-posts", content.GeneratePosts)
	api.Post("/publish-posts", content.PublishPosts)
	api.Post("/autopilot/run", content.RunAutopilot)

	api.Get("/posts", post.ListPosts)
	api.Post("/posts", post.CreatePost)
	api.Get("/posts/:id", post.GetPost)
	api.Put("/posts/:id", post.UpdatePost)
	api.Patch("/posts/:id/status", post.UpdateStatus)
	api.Delete("/posts/:id", post.ArchivePost)
	api.Post("/posts/:id/duplicate", post.DuplicatePost)
	api.Post("/posts/:id/regenerate-image", content.RegenerateImage)
	api.Get("/posts/:id/history", post.PostHistory)
}
