package database

import (
	"context"
	"testing"

	"liquiverde_bff/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestConnectDynamoDB_LocalEndpoint(t *testing.T) {
	cfg := config.DynamoDBConfig{
		Region:          "sa-east-1",
		Endpoint:        "http://dynamodb:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	}

	client, err := ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	opts := client.Options()
	if opts.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", opts.Region)
	}
	if aws.ToString(opts.BaseEndpoint) != "http://dynamodb:8000" {
		t.Fatalf("expected local endpoint, got %v", aws.ToString(opts.BaseEndpoint))
	}

	creds, err := opts.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %+v err=%v", creds, err)
	}
}

func TestNewAWSConfig_DefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	awsCfg, err := NewAWSConfig(context.Background(), config.DynamoDBConfig{AccessKeyID: "a", SecretAccessKey: "b"})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if awsCfg.Region != "us-east-1" {
		t.Fatalf("expected us-east-1, got %s", awsCfg.Region)
	}
}
