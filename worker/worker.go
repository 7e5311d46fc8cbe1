package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker long running background worker
type Worker interface {
	Run(ctx context.Context) error
}

// OnWork one round of a cron job
type OnWork func(ctx context.Context) error

// CronJob runs OnWork on a cron schedule, a tick is skipped while the previous round is running
type CronJob struct {
	Name    string
	Spec    string
	Cron    *cron.Cron
	OnWork  OnWork
	running int32
}

// NewCronJob new cron job, location defaults to UTC
func NewCronJob(name, location, spec string, onWork OnWork) (*CronJob, error) {
	l, err := time.LoadLocation(location)
	if err != nil {
		return nil, err
	}

	job := &CronJob{
		Name:   name,
		Spec:   spec,
		Cron:   cron.New(cron.WithLocation(l)),
		OnWork: onWork,
	}

	return job, nil
}

// Run starts the schedule and blocks until ctx is done
func (job *CronJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", job.Name)
	ctx = logger.WithContext(ctx, log)

	if _, err := job.Cron.AddFunc(job.Spec, func() { job.tick(ctx) }); err != nil {
		return err
	}

	job.Cron.Start()
	<-ctx.Done()
	<-job.Cron.Stop().Done()

	return ctx.Err()
}

func (job *CronJob) tick(ctx context.Context) {
	if !atomic.CompareAndSwapInt32(&job.running, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&job.running, 0)

	if err := job.OnWork(ctx); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("cron job failed")
	}
}
