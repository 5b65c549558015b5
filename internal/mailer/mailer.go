package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// MailJob is a single outbound message queued for delivery.
type MailJob struct {
	To      string
	Subject string
	Body    string
}

type Worker struct {
	ID         int
	WorkerPool chan chan MailJob
	JobChannel chan MailJob
	Logger     *slog.Logger
}

func NewWorker(id int, workerPool chan chan MailJob, logger *slog.Logger) *Worker {
	return &Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan MailJob),
		Logger:     logger,
	}
}

func (w *Worker) Start(ctx context.Context, wg *sync.WaitGroup, processFunc func(MailJob)) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {

			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				w.Logger.Debug("worker delivering mail", "worker_id", w.ID, "to", job.To)
				processFunc(job)
			case <-ctx.Done():
				w.Logger.Debug("worker shutting down", "worker_id", w.ID)
				return
			}
		}
	}()
}

// Client queues outbound mail and delivers it from a worker pool. Callers
// never block on delivery; Send only fails when the queue is full.
type Client struct {
	fromAddress string
	logger      *slog.Logger

	jobQueue   chan MailJob
	workerPool chan chan MailJob
	maxWorkers int
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	once       sync.Once
}

type Config struct {
	FromAddress  string
	MaxWorkers   int
	JobQueueSize int
}

func NewClient(config Config, logger *slog.Logger) *Client {
	ctx, cancel := context.WithCancel(context.Background())

	maxWorkers := config.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	jobQueueSize := config.JobQueueSize
	if jobQueueSize <= 0 {
		jobQueueSize = 100
	}

	client := &Client{
		fromAddress: config.FromAddress,
		logger:      logger,

		maxWorkers: maxWorkers,
		jobQueue:   make(chan MailJob, jobQueueSize),
		workerPool: make(chan chan MailJob, maxWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}

	client.startWorkerPool()

	return client
}

func (c *Client) startWorkerPool() {
	c.once.Do(func() {

		for i := 0; i < c.maxWorkers; i++ {
			worker := NewWorker(i, c.workerPool, c.logger)
			worker.Start(c.ctx, &c.wg, c.deliver)
		}

		go c.dispatch()

		c.logger.Info("mailer worker pool started",
			"max_workers", c.maxWorkers,
			"queue_size", cap(c.jobQueue))
	})
}

func (c *Client) dispatch() {
	c.wg.Add(1)
	defer c.wg.Done()

	for {
		select {
		case job := <-c.jobQueue:

			select {
			case jobChannel := <-c.workerPool:

				select {
				case jobChannel <- job:

				case <-c.ctx.Done():
					c.logger.Info("mail dispatcher shutting down")
					return
				}
			case <-c.ctx.Done():
				c.logger.Info("mail dispatcher shutting down")
				return
			}
		case <-c.ctx.Done():
			c.logger.Info("mail dispatcher shutting down")
			return
		}
	}
}

// Send queues a message for asynchronous delivery.
func (c *Client) Send(to, subject, body string) error {
	job := MailJob{To: to, Subject: subject, Body: body}

	select {
	case c.jobQueue <- job:
		c.logger.Debug("mail queued", "to", to, "subject", subject, "queue_length", len(c.jobQueue))
		return nil
	default:
		c.logger.Warn("mail queue full, dropping message", "to", to, "subject", subject)
		return fmt.Errorf("mail queue full")
	}
}

// deliver is a mock SMTP exchange: delivery is logged, not sent. Swapping
// in a real SMTP client only requires replacing this method.
func (c *Client) deliver(job MailJob) {
	time.Sleep(10 * time.Millisecond)
	c.logger.Info("mail delivered",
		"from", c.fromAddress,
		"to", job.To,
		"subject", job.Subject,
		"body_length", len(job.Body))
}

func (c *Client) Shutdown() {
	c.logger.Info("shutting down mailer")
	c.cancel()
	c.wg.Wait()
	c.logger.Info("mailer shutdown complete")
}
