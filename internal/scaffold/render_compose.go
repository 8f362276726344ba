package scaffold

import (
	"github.com/HartBrook/apiforge/internal/errors"
	"gopkg.in/yaml.v3"
)

// Compose file structure. Built as typed values and marshaled so that the
// gated services, their volumes, and the api depends_on list all come from
// the same toggle branch.

type composeHealthcheck struct {
	Test     []string `yaml:"test"`
	Interval string   `yaml:"interval"`
	Timeout  string   `yaml:"timeout"`
	Retries  int      `yaml:"retries"`
}

type composeService struct {
	Build         string              `yaml:"build,omitempty"`
	Image         string              `yaml:"image,omitempty"`
	ContainerName string              `yaml:"container_name"`
	Environment   map[string]string   `yaml:"environment,omitempty"`
	Ports         []string            `yaml:"ports,omitempty"`
	Volumes       []string            `yaml:"volumes,omitempty"`
	EnvFile       []string            `yaml:"env_file,omitempty"`
	DependsOn     []string            `yaml:"depends_on,omitempty"`
	Restart       string              `yaml:"restart,omitempty"`
	Healthcheck   *composeHealthcheck `yaml:"healthcheck,omitempty"`
}

type composeFile struct {
	Version  string                    `yaml:"version"`
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]any            `yaml:"volumes,omitempty"`
}

// renderCompose produces docker-compose.yml. The api service depends on the
// database service if and only if the database service is defined, and on
// the cache service if and only if the cache service is defined.
func renderCompose(cfg *ProjectConfig) ([]byte, error) {
	api := composeService{
		Build:         ".",
		ContainerName: cfg.Slug + "_api",
		Ports:         []string{"8000:8000"},
		Volumes:       []string{"./app:/app/app"},
		EnvFile:       []string{".env"},
		Restart:       "unless-stopped",
		Healthcheck: &composeHealthcheck{
			Test:     []string{"CMD", "curl", "-f", "http://localhost:8000/health"},
			Interval: "30s",
			Timeout:  "10s",
			Retries:  3,
		},
	}

	services := make(map[string]composeService)
	volumes := make(map[string]any)

	if cfg.Features.Database {
		api.DependsOn = append(api.DependsOn, "db")
		services["db"] = composeService{
			Image:         "postgres:15",
			ContainerName: cfg.Slug + "_db",
			Environment: map[string]string{
				"POSTGRES_USER":     "user",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       cfg.Slug + "_db",
			},
			Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
			Ports:   []string{"5432:5432"},
			Restart: "unless-stopped",
		}
		volumes["postgres_data"] = nil
	}

	if cfg.Features.Cache {
		api.DependsOn = append(api.DependsOn, "redis")
		services["redis"] = composeService{
			Image:         "redis:7-alpine",
			ContainerName: cfg.Slug + "_redis",
			Ports:         []string{"6379:6379"},
			Restart:       "unless-stopped",
		}
	}

	services["api"] = api

	out, err := yaml.Marshal(composeFile{
		Version:  "3.8",
		Services: services,
		Volumes:  volumes,
	})
	if err != nil {
		return nil, errors.RenderFailed("docker-compose.yml", err)
	}
	return out, nil
}
