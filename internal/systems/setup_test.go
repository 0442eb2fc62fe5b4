package systems

import (
	"os"
	"testing"

	"neotokyo-core/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init(logger.Options{Level: "error"})

	// Exit with the result of the tests
	os.Exit(m.Run())
}
