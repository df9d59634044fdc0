package model

// ProviderConfig represents provider-specific configuration
type ProviderConfig struct {
	BaseURL        string
	Project        string
	Repository     string
	Username       string
	Password       string
	CommitPageSize int
	ChangePageSize int
}

// User represents a commit author
type User struct {
	Name  string
	Email string
}
