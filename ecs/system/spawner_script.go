package system

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/barrelclimb/prefabs"
)

// DelayFunc picks the time in ms until the next spawn.
type DelayFunc func(minMs, maxMs float64) float64

// RandomDelay returns a uniform whole number of ms in [minMs, maxMs].
func RandomDelay(minMs, maxMs float64) float64 {
	lo, hi := int(minMs), int(maxMs)
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + rand.IntN(hi-lo+1))
}

// LoadDelayScript compiles a tengo script that reads min_delay and max_delay
// and sets delay. The returned func falls back to RandomDelay when the
// script fails at runtime.
func LoadDelayScript(path string) (DelayFunc, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("spawner: load script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("min_delay", 0)
	_ = script.Add("max_delay", 0)
	script.SetImports(stdlib.GetModuleMap("rand", "math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawner: compile script %s: %w", path, err)
	}

	return func(minMs, maxMs float64) float64 {
		delay, err := runDelayScript(compiled.Clone(), minMs, maxMs)
		if err != nil {
			log.Printf("spawner: script %s: %v", path, err)
			return RandomDelay(minMs, maxMs)
		}
		return delay
	}, nil
}

func runDelayScript(c *tengo.Compiled, minMs, maxMs float64) (float64, error) {
	if err := c.Set("min_delay", int(minMs)); err != nil {
		return 0, err
	}
	if err := c.Set("max_delay", int(maxMs)); err != nil {
		return 0, err
	}
	if err := c.Run(); err != nil {
		return 0, err
	}
	if !c.IsDefined("delay") {
		return 0, fmt.Errorf("delay is not defined")
	}
	delay := c.Get("delay").Float()
	if delay < 0 {
		return 0, fmt.Errorf("negative delay %v", delay)
	}
	return delay, nil
}
