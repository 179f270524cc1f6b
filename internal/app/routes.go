package app

import (
	"github.com/ferdiebergado/sulat/internal/admin"
	"github.com/ferdiebergado/sulat/internal/letter"
	"github.com/ferdiebergado/sulat/internal/middleware"
	"github.com/ferdiebergado/sulat/internal/notify"
	"github.com/ferdiebergado/sulat/internal/platform/router"
	"github.com/ferdiebergado/sulat/internal/platform/validation"
)

func mountLetterRoutes(r router.Router, handler *letter.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api", func(gr router.Router) {
		gr.Get("/people", handler.People)
		gr.Get("/opened-letters", handler.Opened)
		gr.Post("/opened-letters", handler.MarkOpened,
			middleware.CheckContentType,
			middleware.DecodePayload[letter.MarkOpenedRequest](maxBodySize),
			middleware.ValidateInput[letter.MarkOpenedRequest](validator))
		gr.Post("/letters/{name}/unlock", handler.Unlock,
			middleware.CheckContentType,
			middleware.DecodePayload[letter.UnlockRequest](maxBodySize),
			middleware.ValidateInput[letter.UnlockRequest](validator))
	})
}

func mountNotifyRoutes(r router.Router, handler *notify.Handler) {
	r.Get("/api/notifications", handler.Stream)
}

func mountAdminRoutes(r router.Router, guard *admin.Guard, letters *letter.Handler, validator validation.Validator, maxBodySize int64) {
	adminHandler := admin.NewHandler(guard)

	r.Group("/api/admin", func(gr router.Router) {
		gr.Post("/login", adminHandler.Login,
			middleware.CheckContentType,
			middleware.DecodePayload[admin.LoginRequest](maxBodySize),
			middleware.ValidateInput[admin.LoginRequest](validator))

		gr.Group("", func(protected router.Router) {
			protected.Get("/opened-letters", letters.AdminOpened)
			protected.Delete("/opened-letters/{name}", letters.Restore)
			protected.Post("/reset", letters.Reset)
		}, admin.RequireAdmin(guard))
	})
}
