package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/pitchside/internal/pitchside/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := pitchside(); err != nil {
		logrus.Fatal(err)
	}
}

func pitchside() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
