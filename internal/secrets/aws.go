package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSStore reads a single Secrets Manager secret holding a JSON object of
// key/value pairs. The secret is fetched on first use and kept in memory.
type AWSStore struct {
	client   SecretsManagerAPI
	secretID string

	once   sync.Once
	values map[string]string
	err    error
}

// NewAWSStore builds a store using the default AWS credential chain.
func NewAWSStore(ctx context.Context, region, secretID string) (*AWSStore, error) {
	if secretID == "" {
		return nil, fmt.Errorf("aws secret id is required")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewAWSStoreWithClient(secretsmanager.NewFromConfig(cfg), secretID), nil
}

func NewAWSStoreWithClient(client SecretsManagerAPI, secretID string) *AWSStore {
	return &AWSStore{client: client, secretID: secretID}
}

func (s *AWSStore) Get(ctx context.Context, key string) (string, error) {
	s.once.Do(func() {
		s.values, s.err = s.fetch(ctx)
	})
	if s.err != nil {
		return "", s.err
	}
	v, ok := s.values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *AWSStore) fetch(ctx context.Context) (map[string]string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return nil, fmt.Errorf("get secret %q: %w", s.secretID, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %q has no string value", s.secretID)
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &values); err != nil {
		return nil, fmt.Errorf("secret %q is not a JSON object of strings: %w", s.secretID, err)
	}
	return values, nil
}
