package services

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/rs/zerolog"
)

// Mock implementations

type mockSTSClient struct {
	assumeRoleFunc func(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
	calls          []*sts.AssumeRoleInput
}

func (m *mockSTSClient) AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error) {
	m.calls = append(m.calls, params)
	if m.assumeRoleFunc != nil {
		return m.assumeRoleFunc(ctx, params, optFns...)
	}
	return nil, errors.New("assumeRoleFunc not set")
}

type mockSecretsManagerClient struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func (m *mockSecretsManagerClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if m.getSecretValueFunc != nil {
		return m.getSecretValueFunc(ctx, params, optFns...)
	}
	return nil, errors.New("getSecretValueFunc not set")
}

type mockSSMClient struct {
	getParameterFunc func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func (m *mockSSMClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	if m.getParameterFunc != nil {
		return m.getParameterFunc(ctx, params, optFns...)
	}
	return nil, errors.New("getParameterFunc not set")
}

type mockElasticBeanstalkClient struct {
	describeApplicationsFunc func(ctx context.Context, params *elasticbeanstalk.DescribeApplicationsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeApplicationsOutput, error)
	describeEnvironmentsFunc func(ctx context.Context, params *elasticbeanstalk.DescribeEnvironmentsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeEnvironmentsOutput, error)
	updateEnvironmentFunc    func(ctx context.Context, params *elasticbeanstalk.UpdateEnvironmentInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.UpdateEnvironmentOutput, error)

	describeApplicationsCalls int
	updateCalls               []*elasticbeanstalk.UpdateEnvironmentInput
}

func (m *mockElasticBeanstalkClient) DescribeApplications(ctx context.Context, params *elasticbeanstalk.DescribeApplicationsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeApplicationsOutput, error) {
	m.describeApplicationsCalls++
	if m.describeApplicationsFunc != nil {
		return m.describeApplicationsFunc(ctx, params, optFns...)
	}
	return nil, errors.New("describeApplicationsFunc not set")
}

func (m *mockElasticBeanstalkClient) DescribeEnvironments(ctx context.Context, params *elasticbeanstalk.DescribeEnvironmentsInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.DescribeEnvironmentsOutput, error) {
	if m.describeEnvironmentsFunc != nil {
		return m.describeEnvironmentsFunc(ctx, params, optFns...)
	}
	return nil, errors.New("describeEnvironmentsFunc not set")
}

func (m *mockElasticBeanstalkClient) UpdateEnvironment(ctx context.Context, params *elasticbeanstalk.UpdateEnvironmentInput, optFns ...func(*elasticbeanstalk.Options)) (*elasticbeanstalk.UpdateEnvironmentOutput, error) {
	m.updateCalls = append(m.updateCalls, params)
	if m.updateEnvironmentFunc != nil {
		return m.updateEnvironmentFunc(ctx, params, optFns...)
	}
	return &elasticbeanstalk.UpdateEnvironmentOutput{EnvironmentId: params.EnvironmentId}, nil
}

// Helper to create a test context with logger
func testContext() context.Context {
	logger := zerolog.New(io.Discard)
	return logger.WithContext(context.Background())
}
