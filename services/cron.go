// Package services holds the scheduled background jobs.
package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/straddleshift/configapi/audit"
	"github.com/straddleshift/configapi/config"
	"github.com/straddleshift/configapi/shared/zaplogger"
	"gorm.io/gorm"
)

type CronService struct {
	cfg         *config.Config
	db          *gorm.DB
	redisClient *redis.Client
	auditSheet  *audit.Sheet
	c           *cron.Cron
}

func NewCronService(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, auditSheet *audit.Sheet) *CronService {
	return &CronService{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		auditSheet:  auditSheet,
		c:           cron.New(),
	}
}

func (cs *CronService) Start() {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing CronService")

	// Add your scheduled jobs here
	cs.addScheduledJob("Store Heartbeat Job", cs.storeHeartbeatJob, "0 * * * *")    // Hourly
	cs.addScheduledJob("Audit Header Ensure Job", cs.auditHeaderJob, "0 9 * * 1-5") // Once at 09:00am, Mon-Fri

	cs.c.Start()
}

func (cs *CronService) Stop() {
	cs.c.Stop()
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, job)
	if err != nil {
		zaplogger.Error("  * failed to schedule job", zaplogger.Fields{"job": name, "error": err.Error()})
		return
	}
	zaplogger.Info("  * scheduled: "+name, zaplogger.Fields{"schedule": schedule})
}

// storeHeartbeatJob pings both stores so an unreachable store is noticed
// before the next save fails.
func (cs *CronService) storeHeartbeatJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := cs.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		zaplogger.Warn("heartbeat: postgres unreachable", zaplogger.Fields{"error": err.Error()})
	}

	if _, err := cs.redisClient.Ping(ctx).Result(); err != nil {
		zaplogger.Warn("heartbeat: redis unreachable", zaplogger.Fields{"error": err.Error()})
	}
}

// auditHeaderJob makes sure the audit workbook and header row exist before
// the trading day's first save.
func (cs *CronService) auditHeaderJob() {
	if err := cs.auditSheet.EnsureHeader(); err != nil {
		zaplogger.Warn("audit header ensure failed", zaplogger.Fields{"error": err.Error()})
	}
}
