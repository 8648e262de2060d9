package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	value string
	err   error
}

func (f fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(f.value)}, nil
}

type fakeSQS struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	return &sqs.SendMessageOutput{}, f.err
}

func TestGetSecretString(t *testing.T) {
	tests := []struct {
		name     string
		arn      string
		fallback string
		svc      SecretsAPI
		want     string
		wantErr  bool
	}{
		{name: "from secrets manager", arn: "arn:secret", svc: fakeSecrets{value: "from-sm"}, want: "from-sm"},
		{name: "falls back on error", arn: "arn:secret", fallback: "from-env", svc: fakeSecrets{err: errors.New("denied")}, want: "from-env"},
		{name: "no arn uses env", fallback: "from-env", svc: fakeSecrets{value: "unused"}, want: "from-env"},
		{name: "nothing configured", svc: fakeSecrets{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)

			got, err := NewSecretsManagerClientWithAPI(tt.svc).GetSecretString(context.Background(), "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	type rdsSecret struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Run("parses the secret", func(t *testing.T) {
		t.Setenv("TEST_JSON_ARN", "arn:rds")
		var got rdsSecret
		err := NewSecretsManagerClientWithAPI(fakeSecrets{value: `{"username":"relay","password":"p@ss"}`}).
			GetSecretJSON(context.Background(), "TEST_JSON_ARN", &got)
		require.NoError(t, err)
		assert.Equal(t, rdsSecret{Username: "relay", Password: "p@ss"}, got)
	})

	t.Run("not json", func(t *testing.T) {
		t.Setenv("TEST_JSON_ARN", "arn:rds")
		var got rdsSecret
		err := NewSecretsManagerClientWithAPI(fakeSecrets{value: "plain"}).GetSecretJSON(context.Background(), "TEST_JSON_ARN", &got)
		assert.Error(t, err)
	})

	t.Run("arn unset", func(t *testing.T) {
		t.Setenv("TEST_JSON_ARN", "")
		var got rdsSecret
		err := NewSecretsManagerClientWithAPI(fakeSecrets{}).GetSecretJSON(context.Background(), "TEST_JSON_ARN", &got)
		assert.Error(t, err)
	})
}

func TestPublishRelayEvent(t *testing.T) {
	api := &fakeSQS{}
	publisher := NewSQSPublisherWithAPI(api, "https://sqs.local/queue")

	err := publisher.PublishRelayEvent(context.Background(), RelayEvent{TxHash: "0xhash", UserAddress: "0xuser", ContractAddress: "0xstore", Provider: "gelato", ChainID: 137})
	require.NoError(t, err)

	require.NotNil(t, api.input)
	assert.Equal(t, "https://sqs.local/queue", *api.input.QueueUrl)
	assert.Equal(t, "gelato", *api.input.MessageAttributes["Provider"].StringValue)

	var event RelayEvent
	require.NoError(t, json.Unmarshal([]byte(*api.input.MessageBody), &event))
	assert.Equal(t, "0xhash", event.TxHash)
	assert.Equal(t, "0xuser", event.UserAddress)
	assert.Equal(t, "TransactionRelayed", *api.input.MessageAttributes["EventType"].StringValue)

	api.err = errors.New("boom")
	assert.Error(t, publisher.PublishRelayEvent(context.Background(), event))
}
