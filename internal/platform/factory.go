package platform

import (
	"github.com/padvault/pad/pkg/core"
)

// New wires a notepad service to an initialized store at the given path.
//
//	svc, err := pad.New("./path/to/vault", pad.WithAutoInit(true))
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(store), nil
}
