package rpc

import (
	"runtime"
	"time"

	"github.com/MixinNetwork/ratio/config"
)

func (impl *R) getInfo() (map[string]interface{}, error) {
	info := make(map[string]interface{})
	info["version"] = config.BuildVersion
	info["uptime"] = time.Since(impl.startedAt).Round(time.Second).String()

	values, err := impl.store.ListValues()
	if err != nil {
		return info, err
	}
	info["values"] = len(values)
	info["cache"] = map[string]interface{}{
		"entries": impl.cache.entries(),
		"size":    impl.custom.Node.MemoryCacheSize,
	}

	if impl.custom.RPC.Runtime {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		info["runtime"] = map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"heap":       m.HeapAlloc,
			"gc":         m.NumGC,
		}
	}
	return info, nil
}
