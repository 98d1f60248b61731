package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadboard/internal/entity"
)

// FollowUpSender define o contrato de notificação pós-conversão.
type FollowUpSender interface {
	SendFollowUp(to, name string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mailer  FollowUpSender
}

func NewWorker(ch *amqp.Channel, mailer FollowUpSender) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar evento do lead %s: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(payload LeadEventPayload) error {
	// Só a conversão dispara follow-up; os demais eventos ficam no histórico
	// da fila e recebem Ack direto.
	if payload.NewStatus != entity.StatusConverted {
		return nil
	}

	if w.Mailer == nil {
		log.Printf("⚠️ [WORKER] Lead %s convertido mas sem mailer configurado. Apenas logando.", payload.LeadID)
		return nil
	}

	log.Printf("📧 [WORKER] Lead %s convertido, enviando follow-up para %s", payload.LeadID, payload.Email)
	return w.Mailer.SendFollowUp(payload.Email, payload.Name)
}
