// Package notifyは操作結果の一時通知（トースト相当）の出口。
package notify

import "log/slog"

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifierはslogに1行ずつ流す実装。
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info("notify", slog.String("kind", "success"), slog.String("message", msg))
}

func (n *LogNotifier) Error(msg string) {
	n.logger.Warn("notify", slog.String("kind", "error"), slog.String("message", msg))
}

// Nopは何もしない。テストや通知不要の埋め込み用。
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
