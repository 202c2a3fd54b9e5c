// Package config handles loader configuration loading and management.
package config

// Config holds all objtool settings.
type Config struct {
	Loader  LoaderConfig  `yaml:"loader"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoaderConfig holds processing settings for the OBJ loader.
type LoaderConfig struct {
	MaxThreads        int  `yaml:"max_threads"`        // 0 = load inline on the caller
	CalculateTangents bool `yaml:"calculate_tangents"` // build per-vertex tangent space
	JoinIdentical     bool `yaml:"join_identical"`     // deduplicate vertices
	CombineMeshes     bool `yaml:"combine_meshes"`     // one combined mesh per LOD
	Lods              bool `yaml:"lods"`               // discover _lod<k> siblings
}

// ExportConfig holds glTF export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"`
	LodLevel  uint32 `yaml:"lod_level"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			MaxThreads:        4,
			CalculateTangents: true,
			JoinIdentical:     true,
			CombineMeshes:     false,
			Lods:              false,
		},
		Export: ExportConfig{
			OutputDir: ".",
			LodLevel:  0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
