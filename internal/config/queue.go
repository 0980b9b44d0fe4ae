package config

import (
	"github.com/devseank/ctrlq/pkg/cmdqueue"
)

// QueueOptions converts the queue configuration into cmdqueue options.
func (qc QueueConfig) QueueOptions() []cmdqueue.Option {
	classes := make(cmdqueue.ClassSet, len(qc.Classes))
	for i, name := range qc.Classes {
		classes[i] = cmdqueue.Class(name)
	}

	return []cmdqueue.Option{
		cmdqueue.WithStrategy(cmdqueue.StrategyName(qc.Strategy)),
		cmdqueue.WithClasses(classes),
	}
}
