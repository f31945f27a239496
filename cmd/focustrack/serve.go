package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"focustrack/internal/repository"
	"focustrack/internal/service"
	"focustrack/internal/web"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db, log)

			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			userRepo := repository.NewUserRepository(db)
			sessionRepo := repository.NewSessionRepository(db)
			categoryRepo := repository.NewCategoryRepository(db)
			taskRepo := repository.NewTaskRepository(db)
			reminderRepo := repository.NewReminderRepository(db)

			authSvc := service.NewAuthService(userRepo, sessionRepo, cfg.Session.TTL)
			categorySvc := service.NewCategoryService(categoryRepo)
			taskSvc := service.NewTaskService(taskRepo, categorySvc)
			reminderSvc := service.NewReminderService(reminderRepo)

			scheduler := service.NewSchedulerService(time.Local, log)
			if cfg.Scheduler.PruneInterval > 0 && cfg.Session.TTL > 0 {
				if _, err := scheduler.ScheduleInterval("prune_sessions", cfg.Scheduler.PruneInterval, func(ctx context.Context) error {
					n, err := authSvc.PruneExpiredSessions(ctx)
					if err == nil && n > 0 {
						log.WithField("sessions", n).Info("expired sessions pruned")
					}
					return err
				}); err != nil {
					return err
				}
			}
			if cfg.Scheduler.MaintenanceAt != "" {
				if _, err := scheduler.ScheduleDaily("optimize_db", cfg.Scheduler.MaintenanceAt, func(ctx context.Context) error {
					return repository.Optimize(ctx, db)
				}); err != nil {
					return err
				}
			}
			scheduler.Start()
			defer scheduler.Stop()

			firstWeekday, _ := cfg.Calendar.FirstWeekday()
			gin.SetMode(gin.ReleaseMode)
			server := web.NewServer(web.Deps{
				Auth:       authSvc,
				Tasks:      taskSvc,
				Categories: categorySvc,
				Reminders:  reminderSvc,
				Ping:       func(ctx context.Context) error { return repository.Ping(ctx, db) },
				Log:        log,
			}, web.Options{
				SecureCookies: cfg.HTTP.SecureCookies,
				CSRF:          cfg.HTTP.CSRF,
				SessionTTL:    cfg.Session.TTL,
				Calendar: service.CalendarOptions{
					FirstWeekday: firstWeekday,
					SixWeeks:     cfg.Calendar.SixWeekGrid,
				},
			})

			log.Info("FocusTrack started")
			if err := server.Run(ctx, cfg.HTTP.Addr); err != nil {
				return err
			}
			log.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides http.addr")
	return cmd
}
