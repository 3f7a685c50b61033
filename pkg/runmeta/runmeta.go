// Package runmeta resolves the CI identifiers recorded with every
// monitoring run. Outside CI, placeholder values are used so local runs
// remain distinguishable in the history file.
package runmeta

import (
	"os"

	"github.com/google/uuid"
)

type Meta struct {
	RunID     string
	RunNumber string
	Workflow  string
}

func Collect() Meta {
	m := Meta{
		RunID:     os.Getenv("GITHUB_RUN_ID"),
		RunNumber: os.Getenv("GITHUB_RUN_NUMBER"),
		Workflow:  os.Getenv("GITHUB_WORKFLOW"),
	}

	if m.RunID == "" {
		m.RunID = "local-" + uuid.NewString()
	}
	if m.RunNumber == "" {
		m.RunNumber = "0"
	}
	if m.Workflow == "" {
		m.Workflow = "local-test"
	}

	return m
}
