package storage

import (
	"context"

	"github.com/craftbase/appcatalog/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func() (shared.FileStorage, error) {
		return NewFromEnv(context.Background())
	}),
	fx.Provide(NewUploadService),
)
