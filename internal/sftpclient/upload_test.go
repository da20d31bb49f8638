package sftpclient

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadFileValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "test.txt"
	)

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name: "Missing known_hosts",
			cfg: Config{
				Host:           "127.0.0.1",
				User:           testUser,
				Pass:           testPass,
				KnownHostsPath: filepath.Join(t.TempDir(), "missing_known_hosts"),
			},
			errorContains: "sftp: load known_hosts",
		},
		{
			name: "Unreachable host",
			cfg: Config{
				Host:                  "127.0.0.1",
				Port:                  1,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(ctx, tc.cfg, testFile, testFile)
			if err == nil {
				t.Fatalf("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errorContains) {
				t.Errorf("Expected error to contain %q, got %q", tc.errorContains, err.Error())
			}
		})
	}
}

func TestHostKeyCallback(t *testing.T) {
	cb, err := hostKeyCallback(Config{InsecureIgnoreHostKey: true})
	if err != nil || cb == nil {
		t.Fatalf("Expected insecure callback, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "known_hosts")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("Failed to write known_hosts: %v", err)
	}
	cb, err = hostKeyCallback(Config{KnownHostsPath: path})
	if err != nil || cb == nil {
		t.Errorf("Expected callback from empty known_hosts, got %v", err)
	}
}
