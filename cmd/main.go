package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"github.com/privatepenny/privatepennybudget/internal/config"
	"github.com/privatepenny/privatepennybudget/internal/database"
	"github.com/privatepenny/privatepennybudget/internal/mailer"
	"github.com/privatepenny/privatepennybudget/internal/routes"
	"github.com/privatepenny/privatepennybudget/utils"
)

// notifyDueReminders creates an in-app notification for every unpaid reminder
// due today. The unique index on notifications makes reruns harmless.
func notifyDueReminders(pool *pgxpool.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	reminders, err := database.GetRemindersDueOn(ctx, pool, today)
	if err != nil {
		log.Printf("due reminder lookup failed: %v", err)
		return
	}
	for i := range reminders {
		if err := database.CreateReminderNotification(ctx, pool, &reminders[i]); err != nil {
			log.Printf("notification for reminder %d failed: %v", reminders[i].ID, err)
		}
	}
}

func scheduleReminderNotifications(pool *pgxpool.Pool) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@daily", func() { notifyDueReminders(pool) }); err != nil {
		log.Fatalf("scheduling reminder notifications: %v", err)
	}
	c.Start()
	return c
}

func main() {
	seedUsers := flag.Int("seed", 0, "seed the database with N demo users and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("running migrations: %v", err)
	}

	if *seedUsers > 0 {
		if err := utils.SeedDemoData(ctx, pool, *seedUsers); err != nil {
			log.Fatalf("seeding demo data: %v", err)
		}
		log.Printf("seeded %d demo users", *seedUsers)
		return
	}

	var sender mailer.Sender = mailer.LogSender{}
	if cfg.MailConfigured() {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		log.Println("SMTP not configured, password reset links will be logged")
	}

	notifyDueReminders(pool)
	scheduleReminderNotifications(pool)

	r := routes.Setup(pool, cfg, sender)
	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
