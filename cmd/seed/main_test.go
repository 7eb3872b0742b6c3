package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportError_NoDuplicaErroresRegistrados(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, fmt.Errorf("seed: %w", loggedError{errors.New("recurso duplicado")}))
	assert.Empty(t, buf.String(), "ya se registró con zerolog")
}

func TestReportError_ImprimeErroresDeArgumentos(t *testing.T) {
	var buf bytes.Buffer
	reportError(&buf, errors.New(`unknown command "x" for "seed"`))
	assert.Equal(t, "Error: unknown command \"x\" for \"seed\"\n", buf.String())
}

func TestRootCmd_RechazaArgumentosPosicionales(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, []string{"extra"}))
	assert.NoError(t, rootCmd.Args(rootCmd, nil))
}
