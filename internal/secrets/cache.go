package secrets

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Provider fetches one named secret value.
type Provider interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// SSMProvider reads SecureString parameters from SSM Parameter Store.
type SSMProvider struct {
	client *ssm.Client
}

func NewSSMProvider(client *ssm.Client) *SSMProvider {
	return &SSMProvider{client: client}
}

func (p *SSMProvider) GetParameter(ctx context.Context, name string) (string, error) {
	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.Parameter.Value), nil
}

// Cache memoizes provider lookups for the life of the process. There is
// no expiry or refresh: a rotated credential is only picked up after a
// process restart.
type Cache struct {
	provider Provider

	mu     sync.Mutex
	values map[string]string
}

func NewCache(provider Provider) *Cache {
	return &Cache{
		provider: provider,
		values:   make(map[string]string),
	}
}

// Resolve returns the cached value for name, fetching it on first use.
// A failed fetch is not cached.
func (c *Cache) Resolve(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[name]; ok {
		return v, nil
	}
	v, err := c.provider.GetParameter(ctx, name)
	if err != nil {
		return "", err
	}
	c.values[name] = v
	return v, nil
}
