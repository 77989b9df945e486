package system

import (
	"runtime"
	"sort"
	"strings"
)

// mergeEnv overlays cmdEnv on sysEnv. Names compare case-insensitively on
// windows; duplicates in cmdEnv resolve in sorted key order so the result is
// deterministic.
func mergeEnv(sysEnv []string, cmdEnv map[string]string) []string {
	keys := make([]string, 0, len(cmdEnv))
	for k := range cmdEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	overrides := make([]string, 0, len(keys))
	for _, k := range keys {
		if !containsEnvKey(overrides, k) {
			overrides = append(overrides, k)
		}
	}

	env := make([]string, 0, len(sysEnv)+len(overrides))
	for _, kv := range sysEnv {
		key, _, _ := strings.Cut(kv, "=")
		if !containsEnvKey(overrides, key) {
			env = append(env, kv)
		}
	}

	for _, k := range overrides {
		env = append(env, k+"="+cmdEnv[k])
	}

	return env
}

func containsEnvKey(keys []string, key string) bool {
	for _, k := range keys {
		if envKeyEqual(k, key) {
			return true
		}
	}
	return false
}

func envKeyEqual(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
