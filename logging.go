package biketraffic

import (
	log "github.com/sirupsen/logrus"
)

// InitLogger receives the log level to be set in logrus as a string,
// parses it and configures the logger. An invalid level string returns
// an error.
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}
