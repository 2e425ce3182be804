package openapi

import (
	"os"
	"strings"
)

// Config holds document metadata and the server URLs listed in it.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
// Servers is read as a comma-separated list.
type ConfigEnv struct {
	Title       string
	Description string
	Servers     string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "PromptLab API"
	}
	if c.Description == "" {
		c.Description = "AI Prompt Engineering Platform"
	}
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites fields the overlay sets.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Servers != nil {
		c.Servers = overlay.Servers
	}
}

// Apply copies the description and servers onto spec.
func (c *Config) Apply(spec *Spec) {
	spec.SetDescription(c.Description)
	for _, url := range c.Servers {
		spec.AddServer(url)
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := getenv(env.Description); v != "" {
		c.Description = v
	}
	if v := getenv(env.Servers); v != "" {
		servers := []string{}
		for url := range strings.SplitSeq(v, ",") {
			if url = strings.TrimSpace(url); url != "" {
				servers = append(servers, url)
			}
		}
		c.Servers = servers
	}
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
