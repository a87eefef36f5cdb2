package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Fields(t *testing.T) {
	info := NewAppBuildInfo(" 1.4.0 ", "", "9f3c2e1")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, []BuildInfoField{
		{Label: "Version", Value: "1.4.0"},
		{Label: "Date", Value: NotAvailable},
		{Label: "Commit", Value: "9f3c2e1"},
	}, info.Fields())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	for _, f := range (AppBuildInfo{}).Fields() {
		assert.Equal(t, NotAvailable, f.Value, f.Label)
	}
}
