package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSignal(t *testing.T) {
	assert.Equal(t, "npm install acme", NormalizeSignal("  NPM\tInstall\n  ACME  "))
	assert.Equal(t, "", NormalizeSignal("   \n\t "))
}

func TestSignalCoverage(t *testing.T) {
	text := "First run NPM   install, then configure the\nWebhook Secret in the dashboard."

	assert.Equal(t, 1.0, SignalCoverage(text, nil))
	assert.Equal(t, 1.0, SignalCoverage(text, []string{"npm install", "webhook secret"}))
	assert.Equal(t, 0.5, SignalCoverage(text, []string{"npm install", "oauth scopes"}))
	assert.Equal(t, 0.0, SignalCoverage("", []string{"npm install"}))
}
