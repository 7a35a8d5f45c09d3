package systems

import (
	"time"

	cfg "github.com/automoto/robots/config"
)

// stepSeconds is the length of one fixed update.
func stepSeconds() float64 {
	return 1 / float64(cfg.Physics.StepRate)
}

func stepDuration() time.Duration {
	return time.Second / time.Duration(cfg.Physics.StepRate)
}
