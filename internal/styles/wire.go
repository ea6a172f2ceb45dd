//go:build wireinject
// +build wireinject

package styles

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"
)

func initializeJavaConfig(ctx context.Context, logger *zap.Logger) (*javaConfig, error) {
	wire.Build(javaConfigSet)
	return nil, nil
}
