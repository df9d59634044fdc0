package provider

import (
	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/maxbolgarin/commitlens/internal/model/interfaces"
	"github.com/maxbolgarin/commitlens/internal/provider/bitbucket"
	"github.com/maxbolgarin/erro"
)

// NewProvider creates a new repository provider based on the configuration
func NewProvider(cfg Config) (interfaces.RepositoryProvider, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	cfgForProvider := model.ProviderConfig{
		BaseURL:        cfg.BaseURL,
		Project:        cfg.Project,
		Repository:     cfg.Repository,
		Username:       cfg.Username,
		Password:       cfg.Password,
		CommitPageSize: cfg.CommitPageSize,
		ChangePageSize: cfg.ChangePageSize,
	}

	var provider interfaces.RepositoryProvider
	var err error

	switch cfg.Type {
	case Bitbucket:
		provider, err = bitbucket.New(cfgForProvider)
	default:
		return nil, erro.New("unsupported provider type: %s", cfg.Type)
	}
	if err != nil {
		return nil, erro.Wrap(err, "failed to create provider")
	}

	return provider, nil
}
