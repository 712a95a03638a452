package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "defaults",
			wantCode:   0,
			wantStdout: "Overall Rating: Strong",
		},
		{
			name:       "several passwords",
			args:       []string{"-n", "2", "-l", "10"},
			wantCode:   0,
			wantStdout: "Generated 2 passwords:",
		},
		{
			name:       "too short",
			args:       []string{"--length", "3"},
			wantCode:   1,
			wantStderr: "Error: password length too short for required character types (minimum: 4)",
		},
		{
			name:       "too long",
			args:       []string{"--length", "100000000000"},
			wantCode:   1,
			wantStderr: "Error: password length too long (maximum: 1048576)",
		},
		{
			name:       "zero count",
			args:       []string{"--number", "0"},
			wantCode:   1,
			wantStderr: "Error: number of passwords must be at least 1",
		},
		{
			name:     "bad flag",
			args:     []string{"--length", "x"},
			wantCode: 2,
		},
		{
			name:     "help",
			args:     []string{"-h"},
			wantCode: 0,
		},
		{
			name:       "interactive",
			args:       []string{"--interactive"},
			stdin:      "8\n\n\n\n\n2\n",
			wantCode:   0,
			wantStdout: "Generated 2 passwords:",
		},
		{
			name:       "interactive eof",
			args:       []string{"--interactive"},
			stdin:      "8\n",
			wantCode:   1,
			wantStderr: "Error: input closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantStdout != "" {
				assert.Contains(t, stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}
