package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ProjectFile marks the project root and carries project settings.
	ProjectFile = "hde.toml"

	// ManifestFile is the persisted module manifest at the project root.
	ManifestFile = "deploy-everything.json"

	// DataDirName holds journal state and local config.
	DataDirName = ".hde"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env is optional; sender keys and RPC overrides usually live there
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ProjectFile, err)
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		ManifestPath:   filepath.Join(projectRoot, ManifestFile),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		SenderKey:      v.GetString("sender_key"),
		ProjectConfig:  project,
	}

	cfg.ArtifactsDir = project.Artifacts.Dir
	if cfg.ArtifactsDir == "" {
		cfg.ArtifactsDir = "artifacts"
	}
	if !filepath.IsAbs(cfg.ArtifactsDir) {
		cfg.ArtifactsDir = filepath.Join(projectRoot, cfg.ArtifactsDir)
	}

	cfg.ModuleSearchPaths = moduleSearchPaths(projectRoot, project)

	// Resolve network: flag/env first, then the project default
	networkName := v.GetString("network")
	if networkName == "" {
		networkName = project.DefaultNetwork
	}
	if networkName != "" {
		resolver := NewNetworkResolver(project)
		network, err := resolver.Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find hde.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		marker := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(marker); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in an hde project (%s not found)", ProjectFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("HDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", "10m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Missing local config is fine
	_ = v.ReadInConfig()

	// Bind under normalized keys: viper's replacer only applies to env
	// lookups, so dashed flag names must be translated here or reads of
	// e.g. "non_interactive" would never see the flag.
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// loadProjectConfig parses hde.toml. A missing file yields an empty config so
// commands that don't need networks still work.
func loadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	path := filepath.Join(projectRoot, ProjectFile)

	var cfg ProjectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return &ProjectConfig{}, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// moduleSearchPaths returns the absolute roots external modules resolve
// against: <root>/hde_modules plus any configured search paths.
func moduleSearchPaths(projectRoot string, project *ProjectConfig) []string {
	paths := []string{filepath.Join(projectRoot, "hde_modules")}
	for _, p := range project.Modules.SearchPaths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(projectRoot, p)
		}
		paths = append(paths, p)
	}
	return paths
}
