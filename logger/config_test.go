// Package logger_test contains tests for the logger package.
package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/reactive/logger"
)

func TestNew_Defaults(t *testing.T) {
	l, err := logger.New(logger.Config{})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_InvalidEncoding(t *testing.T) {
	_, err := logger.New(logger.Config{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNew_Disabled(t *testing.T) {
	l, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		l.With("key", "value").Named("scope").Debug("dropped")
		_ = l.Sync()
	})
}
