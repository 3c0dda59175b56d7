package dashboard

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Notifier shows transient outcome messages to the operator.
type Notifier interface {
	Success(message string)
	Failure(message string, err error)
}

// Confirmer asks the operator to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// LogNotifier reports outcomes through a logrus logger.
type LogNotifier struct {
	log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message)
}

func (n *LogNotifier) Failure(message string, err error) {
	if err != nil {
		n.log.WithError(err).Error(message)
		return
	}
	n.log.Error(message)
}

type declineAll struct{}

func (declineAll) Confirm(context.Context, string) bool { return false }
