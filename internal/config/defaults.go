package config

const (
	defaultConfigPath          = "~/.config/starbarcode/config.toml"
	defaultOutputDir           = "~/Barcodes"
	defaultLogDir              = "~/.local/share/starbarcode/logs"
	defaultGeneratorBinary     = "star-barcode"
	defaultPlacementTarget     = PlacementInDesign
	defaultPageItem            = "Barcode"
	defaultInDesignApplication = "Adobe InDesign CC 2017"
	defaultOSAScript           = "osascript"
	defaultPromptInterface     = PromptAuto
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLogRetentionDays    = 30
)

// Placement targets.
const (
	PlacementInDesign = "indesign"
	PlacementCommand  = "command"
	PlacementStdout   = "stdout"
)

// Prompt interfaces.
const (
	PromptAuto   = "auto"
	PromptSurvey = "survey"
	PromptLine   = "line"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Generator: Generator{
			Binary:       defaultGeneratorBinary,
			FailOnStderr: true,
		},
		Placement: Placement{
			Target:      defaultPlacementTarget,
			PageItem:    defaultPageItem,
			Application: defaultInDesignApplication,
			OSAScript:   defaultOSAScript,
		},
		Prompt: Prompt{
			Interface: defaultPromptInterface,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
