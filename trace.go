package shapecheck

import (
	"context"
	"log/slog"
)

// Traced logs every outcome of v at debug level under the given name and
// returns the result unchanged. A nil logger uses slog.Default().
func Traced(logger *slog.Logger, name string, v Validator) Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return ValidatorFunc(func(value, parent any) Result {
		res := v.Validate(value, parent)
		if !logger.Enabled(context.Background(), slog.LevelDebug) {
			return res
		}
		if res.OK {
			logger.Debug("validation passed", "validator", name)
			return res
		}
		logger.Debug("validation failed",
			"validator", name,
			"message", res.Message,
			"code", res.Code,
			"path", res.Path,
			"hints", res.Hints,
		)
		return res
	})
}
