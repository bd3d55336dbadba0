package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/federalbonds/backend/config"
	"github.com/federalbonds/backend/pkg/helpers"
	"github.com/federalbonds/backend/pkg/mailer"
)

// Consumes email jobs from the RabbitMQ queue and delivers them via Mailgun.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to start consumer: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker listening on queue %q", cfg.RabbitMQEmailQueue)
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			if err := handleDelivery(ctx, mg, d.Body); err != nil {
				logger.WithError(err).Error("failed to send email, requeueing")
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(ctx context.Context, mg *mailer.Mailgun, body []byte) error {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		// malformed payload, nothing to retry
		logrus.WithError(err).Error("dropping malformed email job")
		return nil
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template == mailer.TemplateWelcome {
		name, _ := job.Data["Name"].(string)
		var err error
		subject, text, html, err = mailer.RenderWelcome(name)
		if err != nil {
			return fmt.Errorf("render welcome template: %w", err)
		}
	}
	if job.To == "" || subject == "" {
		logrus.Error("dropping email job without recipient or subject")
		return nil
	}
	return mg.Send(ctx, job.To, subject, text, html)
}
