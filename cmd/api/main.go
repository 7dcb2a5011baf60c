package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	httpadp "feffi-backend/internal/adapter/http"
	"feffi-backend/internal/adapter/middleware"
	"feffi-backend/internal/adapter/repository/sqlite"
	"feffi-backend/internal/config"
	"feffi-backend/internal/infrastructure/cache"
	"feffi-backend/internal/infrastructure/db"
	authuc "feffi-backend/internal/usecase/auth"
	caisseuc "feffi-backend/internal/usecase/caisse"
	hierarchyuc "feffi-backend/internal/usecase/hierarchy"
	mandataireuc "feffi-backend/internal/usecase/mandataire"
	rapportuc "feffi-backend/internal/usecase/rapport"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
	}

	// repositories
	drens := sqlite.NewDrenRepository(gdb)
	ciscos := sqlite.NewCiscoRepository(gdb)
	zaps := sqlite.NewZapRepository(gdb)
	etabs := sqlite.NewEtablissementRepository(gdb)
	mandataires := sqlite.NewMandataireRepository(gdb)
	caisses := sqlite.NewCaisseRepository(gdb)
	rapports := sqlite.NewRapportRepository(gdb)
	users := sqlite.NewUserRepository(gdb)

	// usecases
	hierUC := hierarchyuc.NewUsecase(drens, ciscos, zaps, etabs,
		mandataires, caisses, rapports)
	mandUC := mandataireuc.NewUsecase(mandataires)
	caisseUC := caisseuc.NewUsecase(caisses)
	rapportUC := rapportuc.NewUsecase(rapports)
	authUC := authuc.NewUsecase(users)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.RegisterRoutes(e,
		httpadp.NewHandler(),
		httpadp.NewAuthHandler(authUC),
		httpadp.NewHierarchyHandler(hierUC),
		httpadp.NewMandataireHandler(mandUC),
		httpadp.NewCaisseHandler(caisseUC),
		httpadp.NewRapportHandler(rapportUC),
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
