package prompt

import (
	"strings"

	"go.uber.org/zap"

	"bayes-calc/core/probability"
	"bayes-calc/internal/errors"
	"bayes-calc/internal/logging"
)

// InvalidMessage is shown after an answer that is not a usable percentage.
const InvalidMessage = "Invalid input: Please enter a valid percentage between 0% and 100%."

// Display shows questions and rejection notices to the user.
type Display interface {
	Prompt(question string)
	Invalid(message string)
}

// Loop asks questions until it gets a usable answer.
type Loop struct {
	source  LineSource
	display Display
}

// NewLoop creates a loop reading from source and writing to display.
func NewLoop(source LineSource, display Display) *Loop {
	return &Loop{source: source, display: display}
}

// Ask prompts for a percentage and keeps asking until one parses. There is
// no retry limit. The only error is a TypeIO error from the line source.
func (l *Loop) Ask(question string) (probability.Probability, error) {
	for attempt := 1; ; attempt++ {
		l.display.Prompt(question)

		line, err := l.source.ReadLine()
		if err != nil {
			return 0, errors.IO("read answer", err).WithContext("question", question)
		}

		p, err := probability.Parse(line)
		if err == nil {
			logging.Debug("accepted probability",
				zap.String("question", question),
				zap.Int("attempt", attempt),
				zap.Float64("value", p.Float64()))
			return p, nil
		}

		logging.Debug("rejected probability",
			zap.String("input", strings.TrimSpace(line)),
			zap.Int("attempt", attempt),
			zap.Error(err))
		l.display.Invalid(InvalidMessage)
	}
}

// AskText prompts once and returns the trimmed answer. Any text is accepted.
func (l *Loop) AskText(question string) (string, error) {
	l.display.Prompt(question)

	line, err := l.source.ReadLine()
	if err != nil {
		return "", errors.IO("read answer", err).WithContext("question", question)
	}
	return strings.TrimSpace(line), nil
}
