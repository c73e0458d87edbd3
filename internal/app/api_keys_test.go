package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeyIsValid(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"key", "other-key"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("other-key"))
	assert.True(t, app.IsInvalidAPIKey("unknown"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: Config{
			ApiKeys: []string{"key"},
		},
	}

	r := httptest.NewRequest("GET", "/api/v1/reports/status.json?key=key", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/v1/reports/status.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
