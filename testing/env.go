// Package testing pins the environment shared by apflow test binaries. Import it for side
// effects before anything reads configuration.
package testing

import "os"

const testModeEnv = "APFLOW_TEST_MODE"

// Env holds the variables applied when a test binary starts. Values the caller already set
// are kept, except the test-mode switch which is always forced on.
var Env = map[string]string{
	testModeEnv:  "1",
	"APP_ENV":    "test",
	"LOG_FORMAT": "json",
	"LOG_LEVEL":  "error",
}

func init() {
	for key, value := range Env {
		if _, set := os.LookupEnv(key); set && key != testModeEnv {
			continue
		}
		_ = os.Setenv(key, value)
	}
}
