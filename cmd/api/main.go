package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fichadas/timeclock-backend-go/internal/config"
	appHTTP "github.com/fichadas/timeclock-backend-go/internal/handler/http"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/cron"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/database"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/jwt"
	"github.com/fichadas/timeclock-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/fichadas/timeclock-backend-go/internal/service/auth"
	configService "github.com/fichadas/timeclock-backend-go/internal/service/calcconfig"
	exportService "github.com/fichadas/timeclock-backend-go/internal/service/export"
	hoursService "github.com/fichadas/timeclock-backend-go/internal/service/hours"
	punchService "github.com/fichadas/timeclock-backend-go/internal/service/punch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sectorRepo := postgresql.NewSectorRepository(db)
	novedadRepo := postgresql.NewNovedadRepository(db)
	calcConfigRepo := postgresql.NewConfigRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	ledgerRepo, err := postgresql.NewLedgerRepository(db, cfg.Payroll.Schema)
	if err != nil {
		log.Fatal("Invalid payroll schema: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	hoursSvc := hoursService.NewHoursService(calcConfigRepo, employeeRepo, sectorRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, sectorRepo, hoursSvc)
	configSvc := configService.NewConfigService(calcConfigRepo, sectorRepo)
	exportSvc := exportService.NewExportService(ledgerRepo, punchRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	sectorHandler := appHTTP.NewSectorHandler(sectorRepo)
	novedadHandler := appHTTP.NewNovedadHandler(novedadRepo)
	configHandler := appHTTP.NewConfigHandler(configSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		sectorHandler,
		novedadHandler,
		configHandler,
		punchHandler,
		exportHandler,
	)

	scheduler := cron.NewScheduler()
	punchJobs := cron.NewPunchJobs(punchSvc, cfg.App.SummerSeason, cfg.App.RecalcHour)
	punchJobs.RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
