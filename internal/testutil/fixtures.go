package testutil

import (
	"embed"
	"encoding/json"

	"github.com/runloopai/rlctl/internal/api"
)

//go:embed fixtures/*.json
var fixturesFS embed.FS

// LoadFixture loads a JSON fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadDevboxListFixture loads a devbox list fixture.
func LoadDevboxListFixture(name string) (*api.DevboxList, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var list api.DevboxList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// LoadDevboxFixture loads a single devbox fixture.
func LoadDevboxFixture(name string) (*api.Devbox, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var d api.Devbox
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadBlueprintListFixture loads a blueprint list fixture.
func LoadBlueprintListFixture(name string) (*api.BlueprintList, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var list api.BlueprintList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DevboxList returns the standard devbox list fixture.
func DevboxList() (*api.DevboxList, error) {
	return LoadDevboxListFixture("devbox_list.json")
}

// RunningDevbox returns the running devbox fixture.
func RunningDevbox() (*api.Devbox, error) {
	return LoadDevboxFixture("devbox_running.json")
}

// BlueprintList returns the standard blueprint list fixture.
func BlueprintList() (*api.BlueprintList, error) {
	return LoadBlueprintListFixture("blueprint_list.json")
}
