package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, errOut := runCLI("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "kmath "+version+"\n", out)
	assert.Empty(t, errOut)
}

func TestUsage(t *testing.T) {
	code, out, _ := runCLI()
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "bench")
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := runCLI("train")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown command "train"`)
}

func TestBench(t *testing.T) {
	tests := []struct {
		mode string
		want []string
	}{
		{"read", []string{"Structure  reading", "Buffer     reading", "Array      reading", "checksum: 64"}},
		{"write", []string{"Structure  mapping", "Array      mapping", "Buffer     mapping"}},
		{"ops", []string{"generic    add", "float64    add", "parallel   add"}},
		{"all", []string{"Structure Reading", "Structure Mapping", "Context Addition"}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			code, out, errOut := runCLI("bench", "-mode", tt.mode, "-n", "4")
			require.Equal(t, 0, code, errOut)
			assert.Contains(t, out, "Structure: 4×4")
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestBenchErrors(t *testing.T) {
	code, _, errOut := runCLI("bench", "-mode", "gpu")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown mode: "gpu"`)

	code, _, errOut = runCLI("bench", "-n", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "-n must be positive")

	code, _, errOut = runCLI("bench", "-bogus")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)
}

func TestBenchHelp(t *testing.T) {
	code, out, _ := runCLI("bench", "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "-mode")
}
