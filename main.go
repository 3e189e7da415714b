package main

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/drone/drone-junit/plugin"
)

func main() {
	var args plugin.Args
	if err := envconfig.Process("", &args); err != nil {
		logrus.Fatalln("invalid plugin configuration:", err)
	}

	if err := setLogLevel(args.Level); err != nil {
		logrus.Fatalln(err)
	}

	if err := plugin.ValidateInputs(args); err != nil {
		logrus.Fatalln(err)
	}

	if err := plugin.Exec(context.Background(), args); err != nil {
		logrus.Fatalln(err)
	}
}

func setLogLevel(level string) error {
	if level == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %s", level, err)
	}
	logrus.SetLevel(parsed)
	return nil
}
