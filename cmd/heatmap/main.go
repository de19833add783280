package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/district-heatmap/pkg/runErrors"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	if err := rootCmd.Execute(); err != nil {
		logrus.WithField("code", runErrors.CodeOf(err)).Debug(err)
		os.Exit(runErrors.WriteError(os.Stderr, err))
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
