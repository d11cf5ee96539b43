package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loantrack-backend/internal/adapter/http"
	"loantrack-backend/internal/adapter/middleware"
	"loantrack-backend/internal/adapter/repository/mysql"
	"loantrack-backend/internal/config"
	loanDomain "loantrack-backend/internal/domain/loan"
	paymentDomain "loantrack-backend/internal/domain/payment"
	userDomain "loantrack-backend/internal/domain/user"
	"loantrack-backend/internal/infrastructure/cache"
	"loantrack-backend/internal/infrastructure/db"
	authUC "loantrack-backend/internal/usecase/auth"
	loanUC "loantrack-backend/internal/usecase/loan"
	paymentUC "loantrack-backend/internal/usecase/payment"
	userUC "loantrack-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&userDomain.User{},
		&loanDomain.Loan{},
		&loanDomain.Document{},
		&paymentDomain.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	paymentRepo := mysql.NewPaymentRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)

	loans := loanUC.NewUsecase(loanRepo, userRepo)
	payments := paymentUC.NewUsecase(paymentRepo, loanRepo)
	users := userUC.NewUsecase(userRepo)
	auth := authUC.NewUsecase(userRepo,
		[]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLHours)*time.Hour)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(auth)
	loanH := httpadp.NewLoanHandler(loans)
	paymentH := httpadp.NewPaymentHandler(payments)
	userH := httpadp.NewUserHandler(users)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	idemTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	protected := api.Group("", middleware.Auth([]byte(cfg.JWTSecret)), middleware.Idempotency(rdb, idemTTL))

	protected.POST("/loans", loanH.CreateLoan)
	protected.GET("/loans", loanH.ListLoans)
	protected.GET("/loans/:id", loanH.GetLoan)
	protected.PUT("/loans/:id", loanH.UpdateLoanStatus, middleware.RequireAdmin())
	protected.DELETE("/loans/:id", loanH.DeleteLoan, middleware.RequireAdmin())

	protected.POST("/payments", paymentH.RecordPayment)
	protected.GET("/payments", paymentH.ListPayments)
	protected.GET("/payments/loan/:loanId", paymentH.ListLoanPayments)

	protected.GET("/users/profile", userH.Profile)
	protected.PUT("/users/profile", userH.UpdateProfile)
	protected.GET("/users", userH.ListUsers, middleware.RequireAdmin())

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
