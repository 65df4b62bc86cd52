package structures

type CliFlags struct {
	ConfigPath string
	Root       string
	DebugMode  bool
}

type SourceConfig struct {
	Root       string `yaml:"root" validate:"required"`
	HistoryDir string `yaml:"historyDir" validate:"required"`
	Workers    int    `yaml:"workers" validate:"int|min:1|max:64"`
}

type ReportConfig struct {
	PlacesFile              string `yaml:"placesFile" validate:"required"`
	ActivitiesFile          string `yaml:"activitiesFile" validate:"required"`
	Activities              bool   `yaml:"activities"`
	CoordinateDigits        int    `yaml:"coordinateDigits" validate:"int|min:1|max:15"`
	RequireStartCoordinates bool   `yaml:"requireStartCoordinates"`
	Compress                bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName string
	Debug   bool
	Path    string
	Source  SourceConfig  `yaml:"source"`
	Report  ReportConfig  `yaml:"report"`
	Logger  LoggerConfig  `yaml:"logger"`
	Cache   CacheConfig   `yaml:"cache"`
	Metrics MetricsConfig `yaml:"metrics"`
}
