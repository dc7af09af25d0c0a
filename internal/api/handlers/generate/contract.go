package generate

import (
	"context"

	"github.com/m04kA/SMC-StayBookings/internal/integrations/classifier"
)

type Classifier interface {
	Classify(ctx context.Context, text string) (*classifier.Classification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
