package provider

import (
	"slices"
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
)

type ProviderType string

// SupportedProviderTypes defines the supported source-control server types
const (
	Bitbucket ProviderType = "bitbucket"
)

var supportedProviderTypes = []ProviderType{Bitbucket}

const (
	defaultCommitPageSize = 100
	defaultChangePageSize = 1000
)

// Config represents source-control server configuration
type Config struct {
	Type           ProviderType `yaml:"type" env:"PROVIDER_TYPE"`
	BaseURL        string       `yaml:"base_url" env:"PROVIDER_BASE_URL"`
	Project        string       `yaml:"project" env:"PROVIDER_PROJECT"`
	Repository     string       `yaml:"repository" env:"PROVIDER_REPOSITORY"`
	Username       string       `yaml:"username" env:"PROVIDER_USERNAME"`
	Password       string       `yaml:"password" env:"PROVIDER_PASSWORD"`
	CommitPageSize int          `yaml:"commit_page_size" env:"PROVIDER_COMMIT_PAGE_SIZE"`
	ChangePageSize int          `yaml:"change_page_size" env:"PROVIDER_CHANGE_PAGE_SIZE"`
}

func (c *Config) PrepareAndValidate() error {
	c.Type = ProviderType(lang.Check(string(c.Type), string(Bitbucket)))
	if !slices.Contains(supportedProviderTypes, c.Type) {
		return errm.New("invalid provider type: %s", c.Type)
	}

	if c.BaseURL == "" {
		return errm.New("base URL is required")
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	if c.Project == "" {
		return errm.New("project key is required")
	}
	if c.Repository == "" {
		return errm.New("repository name is required")
	}
	if c.Username == "" || c.Password == "" {
		return errm.New("basic auth credentials are required")
	}

	c.CommitPageSize = lang.Check(c.CommitPageSize, defaultCommitPageSize)
	c.ChangePageSize = lang.Check(c.ChangePageSize, defaultChangePageSize)

	return nil
}
