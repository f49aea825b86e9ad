package scene

import (
	"fmt"
	"sort"
)

// Builder constructs a built-in scene from scratch
type Builder func() (*Scene, error)

// Info describes a registered scene
type Info struct {
	ID          string
	Description string
}

type entry struct {
	info  Info
	build Builder
}

var registry = make(map[string]entry)

// register adds a built-in scene to the registry. Called from init
// functions of the scene constructors.
func register(info Info, build Builder) {
	if _, ok := registry[info.ID]; ok {
		panic(fmt.Sprintf("scene: duplicate registration of %q", info.ID))
	}
	registry[info.ID] = entry{info: info, build: build}
}

// List returns the registered scenes sorted by identifier
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Build constructs the scene registered under the given identifier
func Build(id string) (*Scene, error) {
	e, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return e.build()
}
