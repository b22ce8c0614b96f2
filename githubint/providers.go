package githubint

import (
	"github.com/craftbase/appcatalog/config"
	"github.com/craftbase/appcatalog/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func() shared.GithubClientFacade {
		return NewGithubClient(config.GithubToken())
	}),
	fx.Provide(fx.Annotate(NewRepoMetadataFetcher, fx.As(new(shared.RepoMetadataFetcher)))),
)
