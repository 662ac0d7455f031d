package service

import (
	"context"
	"encoding/json"
	"log"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the report-alert topic and emails the infra team.
// Email delivery is decoupled from the chat turn so SMTP hiccups never delay
// a reply.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	alertEmail   string
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	alertEmail string,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		alertEmail:   alertEmail,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var alert dto.ReportAlertMessage
	if err := json.Unmarshal(msg.Payload, &alert); err != nil {
		log.Printf("[ERROR] Failed to unmarshal report alert: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Emailing infra team about report %s", alert.ReportId)

	if err := cs.emailService.SendReportAlert(cs.alertEmail, alert.ReporterEmail, alert.Description, alert.Count); err != nil {
		log.Printf("[ERROR] Failed to send report alert for %s: %v", alert.ReportId, err)
		msg.Nack() // Retriable: SMTP may recover
		return
	}

	msg.Ack()
}
