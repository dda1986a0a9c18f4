package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "temple-membership-backend/internal/adapter/http"
	"temple-membership-backend/internal/adapter/middleware"
	"temple-membership-backend/internal/adapter/notifier"
	"temple-membership-backend/internal/adapter/repository/mysql"
	"temple-membership-backend/internal/config"
	"temple-membership-backend/internal/domain/application"
	"temple-membership-backend/internal/domain/donation"
	"temple-membership-backend/internal/domain/event"
	"temple-membership-backend/internal/domain/profile"
	"temple-membership-backend/internal/domain/role"
	"temple-membership-backend/internal/domain/user"
	"temple-membership-backend/internal/infrastructure/cache"
	"temple-membership-backend/internal/infrastructure/db"
	"temple-membership-backend/internal/infrastructure/storage"
	appUsecase "temple-membership-backend/internal/usecase/application"
	authUsecase "temple-membership-backend/internal/usecase/auth"
	donationUsecase "temple-membership-backend/internal/usecase/donation"
	eventUsecase "temple-membership-backend/internal/usecase/event"
	profileUsecase "temple-membership-backend/internal/usecase/profile"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&user.User{},
		&role.UserRole{},
		&profile.Profile{},
		&application.Application{},
		&donation.Donation{},
		&event.TempleEvent{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	store, err := storage.OpenS3(context.Background(), cfg.S3Endpoint)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	roleRepo := mysql.NewRoleRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	profileRepo := mysql.NewProfileRepository(gdb)
	donationRepo := mysql.NewDonationRepository(gdb)
	eventRepo := mysql.NewEventRepository(gdb)
	txManager := mysql.NewGormUoW(gdb)

	mailer := notifier.NewResendClient(cfg.ResendAPIKey, cfg.EmailFrom)

	appUC := appUsecase.NewUsecase(appRepo, roleRepo, profileRepo, txManager, store, mailer, appUsecase.Buckets{
		IdentityDocs:   cfg.IdentityDocBucket,
		PassportPhotos: cfg.PassportPhotoBucket,
		Avatars:        cfg.AvatarBucket,
	})
	authUC := authUsecase.NewUsecase(userRepo, profileRepo, []byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLHours)*time.Hour)
	profileUC := profileUsecase.NewUsecase(profileRepo, store, cfg.AvatarBucket)
	donationUC := donationUsecase.NewUsecase(donationRepo, roleRepo)
	eventUC := eventUsecase.NewUsecase(eventRepo, roleRepo)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	appH := httpadp.NewApplicationHandler(appUC)
	adminH := httpadp.NewAdminHandler(appUC)
	profileH := httpadp.NewProfileHandler(profileUC)
	donationH := httpadp.NewDonationHandler(donationUC)
	eventH := httpadp.NewEventHandler(eventUC)
	paymentH := httpadp.NewPaymentHandler(cfg.UPIID, cfg.UPIPayeeName, cfg.MembershipFee)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	authn := middleware.JWTAuth([]byte(cfg.JWTSecret))
	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// public
	e.GET("/health", h.Health)
	e.GET("/events", eventH.List)
	e.GET("/payment-details", paymentH.Details)
	e.POST("/auth/signup", authH.SignUp)
	e.POST("/auth/signin", authH.SignIn)
	e.GET("/auth/me", authH.Me, authn)

	// member
	apps := e.Group("/applications", authn)
	apps.POST("", appH.Submit, idemp)
	apps.GET("", appH.ListOwn)
	apps.GET("/:application_id/card", appH.MemberCard)

	prof := e.Group("/profile", authn)
	prof.GET("", profileH.Get)
	prof.PUT("", profileH.Update)
	prof.POST("/avatar", profileH.UploadAvatar)

	e.POST("/donations", donationH.Record, authn, idemp)

	// admin (role check lives in the usecases)
	admin := e.Group("/admin", authn)
	admin.GET("/applications", adminH.ListApplications)
	admin.PATCH("/applications/:application_id/status", adminH.UpdateStatus, idemp)
	admin.PATCH("/applications/:application_id", adminH.UpdateApplication)
	admin.POST("/applications/:application_id/member-id", adminH.AssignMemberID)
	admin.GET("/donations", donationH.ListAll)
	admin.POST("/events", eventH.Create)
	admin.PUT("/events/:event_id", eventH.Update)
	admin.DELETE("/events/:event_id", eventH.Delete)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
