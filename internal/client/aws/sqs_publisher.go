package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS client used by the publisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// RelayEvent is published after a meta transaction has been relayed and recorded.
type RelayEvent struct {
	TxHash          string    `json:"txHash"`
	UserAddress     string    `json:"userAddress"`
	ContractAddress string    `json:"contractAddress"`
	Provider        string    `json:"provider"`
	ChainID         uint64    `json:"chainId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SQSPublisher sends relay events to a queue.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

// NewSQSPublisher loads the default AWS config and creates a publisher for queueURL.
func NewSQSPublisher(ctx context.Context, queueURL string) (*SQSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSQSPublisherWithAPI(sqs.NewFromConfig(cfg), queueURL), nil
}

func NewSQSPublisherWithAPI(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

// PublishRelayEvent sends the event as a TransactionRelayed JSON message.
func (p *SQSPublisher) PublishRelayEvent(ctx context.Context, event RelayEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal relay event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(eventBytes)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: aws.String("TransactionRelayed"),
				DataType:    aws.String("String"),
			},
			"Provider": {
				StringValue: aws.String(event.Provider),
				DataType:    aws.String("String"),
			},
			"UserAddress": {
				StringValue: aws.String(event.UserAddress),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
