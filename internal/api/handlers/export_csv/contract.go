package export_csv

import (
	"context"
)

type ExportService interface {
	Export(ctx context.Context, entity string) ([][]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
