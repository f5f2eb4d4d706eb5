package bootstrap

import "go.uber.org/zap"

// NewLogger builds the JSON production logger or the console development one.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
