package models

import "strings"

// NotAvailable is shown in place of build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the linker-injected metadata of a client or server binary.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// BuildInfoField is one labeled line of build metadata.
type BuildInfoField struct {
	Label string
	Value string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the raw version, empty when unset.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// Fields lists version, date and commit in display order with blank values
// replaced by NotAvailable.
func (a AppBuildInfo) Fields() []BuildInfoField {
	return []BuildInfoField{
		{Label: "Version", Value: orNotAvailable(a.buildVersion)},
		{Label: "Date", Value: orNotAvailable(a.buildDate)},
		{Label: "Commit", Value: orNotAvailable(a.buildCommit)},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
