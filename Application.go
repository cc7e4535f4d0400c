package main

import (
	"PongSim/core"
	"PongSim/logger"
	"fmt"
	"os"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = "local"
	}
	props, err := core.ReadProperties("./", env)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigFallbackMsg, err))
	}

	start(props)
}
