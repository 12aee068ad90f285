package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/profile", handler.AuthRequired, handler.GetProfile)
	api.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	questionnaire := api.Group("/questionnaire", handler.AuthRequired)
	questionnaire.Get("", handler.GetQuestionnaire)
	questionnaire.Post("", handler.SaveQuestionnaire)
	questionnaire.Post("/edit", handler.BeginQuestionnaireEdit)
	questionnaire.Post("/cancel", handler.CancelQuestionnaireEdit)

	insights := api.Group("/insights", handler.AuthRequired)
	insights.Get("", handler.GetInsights)
	insights.Get("/share", handler.GetShareText)

	chat := api.Group("/chat", handler.AuthRequired)
	chat.Post("", handler.SendChatMessage)
	chat.Get("/:session", handler.GetChatSession)
	chat.Delete("/:session", handler.DeleteChatSession)
	chat.Delete("", handler.DeleteChatHistory)

	api.Get("/fruit/:name", handler.AuthRequired, handler.LookupFruit)
}
