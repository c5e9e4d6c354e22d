// Where: internal/identity/identity.go
// What: Caller-identity lookups through STS.
// Why: Back the whoami command and --verify without routing through the external tool.
package identity

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/stsenv/stsenv/internal/creds"
)

// Identity describes the principal behind a set of credentials.
type Identity struct {
	Account string
	Arn     string
	UserID  string
}

// FromProfile resolves the caller identity of a shared-config profile.
func FromProfile(ctx context.Context, profile string) (Identity, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return Identity{}, err
	}
	return callerIdentity(ctx, cfg)
}

// FromCredentials resolves the caller identity of freshly issued credentials
// using a static provider, bypassing every ambient credential source.
func FromCredentials(ctx context.Context, c creds.Credentials) (Identity, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			c.SessionToken,
		)),
	)
	if err != nil {
		return Identity{}, err
	}
	return callerIdentity(ctx, cfg)
}

func callerIdentity(ctx context.Context, cfg aws.Config) (Identity, error) {
	out, err := sts.NewFromConfig(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Account: aws.ToString(out.Account),
		Arn:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
