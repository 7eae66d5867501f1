package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pkg/errors"
)

const Namespace = "nokdoc"

// WriteFile writes the current value of every registered collector to
// filename in the Prometheus text exposition format.
func WriteFile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
