package http

import "github.com/labstack/echo/v4"

// RegisterRoutes lays the command surface onto HTTP: one route per
// (entity, operation) pair, all replying with the uniform envelope.
func RegisterRoutes(
	e *echo.Echo,
	h *Handler,
	ah *AuthHandler,
	hh *HierarchyHandler,
	mh *MandataireHandler,
	ch *CaisseHandler,
	rh *RapportHandler,
) {
	e.GET("/health", h.Health)

	e.POST("/register", ah.Register)
	e.POST("/login", ah.Login)
	e.GET("/users", ah.ReadUsers)
	e.PUT("/users/:id", ah.UpdateUser)
	e.DELETE("/users/:id", ah.DeleteUser)

	e.GET("/hierarchy/children", hh.Children)
	e.POST("/hierarchy/hydrate", hh.Hydrate)
	e.GET("/hierarchy/hydrate", hh.Hydrate)

	e.POST("/drens", hh.CreateDren)
	e.GET("/drens", hh.ReadDrens)
	e.PUT("/drens/:id", hh.UpdateDren)
	e.DELETE("/drens/:id", hh.DeleteDren)

	e.POST("/ciscos", hh.CreateCisco)
	e.GET("/ciscos", hh.ReadCiscos)
	e.PUT("/ciscos/:id", hh.UpdateCisco)
	e.DELETE("/ciscos/:id", hh.DeleteCisco)

	e.POST("/zaps", hh.CreateZap)
	e.GET("/zaps", hh.ReadZaps)
	e.PUT("/zaps/:id", hh.UpdateZap)
	e.DELETE("/zaps/:id", hh.DeleteZap)

	e.POST("/etablissements", hh.CreateEtablissement)
	e.GET("/etablissements", hh.ReadEtablissements)
	e.PUT("/etablissements/:id", hh.UpdateEtablissement)
	e.DELETE("/etablissements/:id", hh.DeleteEtablissement)

	e.POST("/mandataires", mh.Create)
	e.GET("/mandataires", mh.Read)
	e.PUT("/mandataires/:id", mh.Update)
	e.DELETE("/mandataires/:id", mh.Delete)
	e.GET("/mandataires/export", mh.Export)

	e.POST("/caisses", ch.Create)
	e.GET("/caisses", ch.Read)
	e.PUT("/caisses/:id", ch.Update)
	e.DELETE("/caisses/:id", ch.Delete)
	e.GET("/caisses/export", ch.Export)

	e.POST("/rapports", rh.Create)
	e.GET("/rapports", rh.Read)
	e.PUT("/rapports/:id", rh.Update)
	e.DELETE("/rapports/:id", rh.Delete)
	e.GET("/rapports/export", rh.Export)
}
