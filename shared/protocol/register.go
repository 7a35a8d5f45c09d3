package protocol

import (
	"sync"

	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBody  uint = 10
	SyncIDNetActor uint = 11
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBody uint8 = 10
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterComponents registers the replicated components with necs. Both
// ends call it before any network operation; later calls return the first
// result.
func RegisterComponents() error {
	registerOnce.Do(func() {
		registerErr = registerComponents()
	})
	return registerErr
}

func registerComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetBody,
		NetBodyData{},
		NetBody,
		esync.WithInterpFn(InterpIDNetBody, LerpNetBody),
	); err != nil {
		return err
	}

	// Actor: no interpolation (discrete state changes)
	return esync.RegisterComponent(
		SyncIDNetActor,
		NetActorData{},
		NetActor,
	)
}
