package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const testConfig = `aws:
  url: https://sqs.eu-central-1.amazonaws.com/000000000000/list-operations.fifo
  region: eu-central-1
  clientId: ${TEST_AWS_CLIENT_ID}
  clientSecret: secret
  clientToken: token
logFile: operations.log
clientsInputPath: input.txt
serverWaitTimeSeconds: 5
loadReportSeconds: 15
`

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	oldFs := AppFs
	AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { AppFs = oldFs })
	return AppFs
}

func Test_LoadConfig(t *testing.T) {
	fs := useMemFs(t)
	if err := afero.WriteFile(fs, "config.yaml", []byte(testConfig), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEST_AWS_CLIENT_ID", "id-123")

	conf, err := LoadConfig("config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %s", err)
	}

	if conf.Aws.QueueUrl != "https://sqs.eu-central-1.amazonaws.com/000000000000/list-operations.fifo" {
		t.Errorf("Bad queue url %q", conf.Aws.QueueUrl)
	}
	if conf.Aws.Region != "eu-central-1" {
		t.Errorf("Bad region %q", conf.Aws.Region)
	}
	if conf.Aws.ClientId != "id-123" {
		t.Errorf("Environment variable was not expanded, got %q", conf.Aws.ClientId)
	}
	if conf.LogFilePath != "operations.log" || conf.ClientsInputPath != "input.txt" {
		t.Error("Bad file paths")
	}
	if conf.ServerWaitTimeSeconds != 5 || conf.LoadReportSeconds != 15 {
		t.Error("Bad timing values")
	}
}

func Test_LoadConfig_MissingFile(t *testing.T) {
	useMemFs(t)

	_, err := LoadConfig("nope.yaml")
	if err == nil {
		t.Fatal("LoadConfig succeeded without a file")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("Error %q lacks read context", err.Error())
	}
}

func Test_LoadConfig_BadYaml(t *testing.T) {
	fs := useMemFs(t)
	if err := afero.WriteFile(fs, "config.yaml", []byte("aws: [not: a: mapping"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig("config.yaml")
	if err == nil {
		t.Fatal("LoadConfig accepted broken yaml")
	}
	if !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("Error %q lacks parse context", err.Error())
	}
}

func Test_LoadConfig_NoAwsSection(t *testing.T) {
	fs := useMemFs(t)
	if err := afero.WriteFile(fs, "config.yaml", []byte("logFile: x.log\n"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig("config.yaml")
	if err == nil {
		t.Fatal("LoadConfig accepted a config without aws settings")
	}
}
