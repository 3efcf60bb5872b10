package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"main/pkg/conn"
)

const (
	defaultHost          = "localhost"
	defaultPricePort     = 3000
	defaultMarketPort    = 3001
	defaultTradePort     = 3002
	defaultInquiryPort   = 3003
	defaultStreamingPort = 3004
	defaultExecutionPort = 3005

	defaultDataDir    = "data"
	defaultResultDir  = "results"
	defaultGUIMillis  = 300
	defaultSeed       = 42
	defaultPriceTicks = 1000
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Host      string             `json:"host"`
	Ports     PortsConfig        `json:"ports"`
	Dirs      DirsConfig         `json:"dirs"`
	GUI       GUIConfig          `json:"gui"`
	Generator GeneratorConfig    `json:"generator"`
	Archive   ArchiveConfig      `json:"archive"`
	Profiling ProfilingConfig    `json:"profiling"`
	Features  FeatureFlagsConfig `json:"features"`
}

// ProfilingConfig enables continuous profiling when a server address
// is set.
type ProfilingConfig struct {
	ServerAddress string `json:"serverAddress"`
}

// PortsConfig defines the per-feed TCP ports.
type PortsConfig struct {
	Price     int `json:"price"`
	Market    int `json:"market"`
	Trade     int `json:"trade"`
	Inquiry   int `json:"inquiry"`
	Streaming int `json:"streaming"`
	Execution int `json:"execution"`
}

// DirsConfig defines the data and result directories.
type DirsConfig struct {
	Data    string `json:"data"`
	Results string `json:"results"`
}

// GUIConfig defines the gui output throttle.
type GUIConfig struct {
	ThrottleMillis int `json:"throttleMillis"`
}

// GeneratorConfig defines the synthetic feed sizes.
type GeneratorConfig struct {
	Seed                int64 `json:"seed"`
	TicksPerProduct     int   `json:"ticksPerProduct"`
	TradesPerProduct    int   `json:"tradesPerProduct"`
	InquiriesPerProduct int   `json:"inquiriesPerProduct"`
}

// ArchiveConfig defines the optional archive database.
type ArchiveConfig struct {
	Driver     string `json:"driver"`
	Path       string `json:"path"`
	ConnString string `json:"connString"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"password"`
	Database   string `json:"database"`
}

// FeatureFlagsConfig captures optional runtime flags.
type FeatureFlagsConfig struct {
	EnableGUI     *bool `json:"enableGui"`
	EnableArchive *bool `json:"enableArchive"`
}

// FeatureFlags are resolved runtime flags.
type FeatureFlags struct {
	EnableGUI     bool
	EnableArchive bool
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Host        string
	Profiling   ProfilingConfig
	Ports       PortsConfig
	DataDir     string
	ResultDir   string
	GUIThrottle time.Duration
	Generator   GeneratorConfig
	Archive     conn.Option
	Features    FeatureFlags
}

// Addr joins the configured host with a port.
func (l Loaded) Addr(port int) string {
	return fmt.Sprintf("%s:%d", l.Host, port)
}

// Load reads a JSON config file and resolves it. An empty path yields
// the defaults.
func Load(path string) (Loaded, error) {
	if path == "" {
		return defaultLoaded(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func defaultLoaded() Loaded {
	loaded, _ := resolve(FileConfig{})
	return loaded
}

func resolve(cfg FileConfig) (Loaded, error) {
	loaded := Loaded{
		Host:      cfg.Host,
		Profiling: cfg.Profiling,
		Ports:     cfg.Ports,
		DataDir:   cfg.Dirs.Data,
		ResultDir: cfg.Dirs.Results,
		Generator: cfg.Generator,
	}
	if loaded.Host == "" {
		loaded.Host = defaultHost
	}
	fillPort(&loaded.Ports.Price, defaultPricePort)
	fillPort(&loaded.Ports.Market, defaultMarketPort)
	fillPort(&loaded.Ports.Trade, defaultTradePort)
	fillPort(&loaded.Ports.Inquiry, defaultInquiryPort)
	fillPort(&loaded.Ports.Streaming, defaultStreamingPort)
	fillPort(&loaded.Ports.Execution, defaultExecutionPort)
	if err := validatePorts(loaded.Ports); err != nil {
		return Loaded{}, err
	}

	if loaded.DataDir == "" {
		loaded.DataDir = defaultDataDir
	}
	if loaded.ResultDir == "" {
		loaded.ResultDir = defaultResultDir
	}

	throttle := cfg.GUI.ThrottleMillis
	if throttle <= 0 {
		throttle = defaultGUIMillis
	}
	loaded.GUIThrottle = time.Duration(throttle) * time.Millisecond

	if loaded.Generator.Seed == 0 {
		loaded.Generator.Seed = defaultSeed
	}
	if loaded.Generator.TicksPerProduct <= 0 {
		loaded.Generator.TicksPerProduct = defaultPriceTicks
	}
	if loaded.Generator.TradesPerProduct <= 0 {
		loaded.Generator.TradesPerProduct = 10
	}
	if loaded.Generator.InquiriesPerProduct <= 0 {
		loaded.Generator.InquiriesPerProduct = 10
	}

	loaded.Archive = conn.Option{
		Driver:     cfg.Archive.Driver,
		Path:       cfg.Archive.Path,
		ConnString: cfg.Archive.ConnString,
		Host:       cfg.Archive.Host,
		Port:       cfg.Archive.Port,
		User:       cfg.Archive.User,
		Password:   cfg.Archive.Password,
		Database:   cfg.Archive.Database,
	}

	loaded.Features = FeatureFlags{EnableGUI: true, EnableArchive: false}
	if cfg.Features.EnableGUI != nil {
		loaded.Features.EnableGUI = *cfg.Features.EnableGUI
	}
	if cfg.Features.EnableArchive != nil {
		loaded.Features.EnableArchive = *cfg.Features.EnableArchive
	}
	return loaded, nil
}

func fillPort(port *int, fallback int) {
	if *port == 0 {
		*port = fallback
	}
}

func validatePorts(ports PortsConfig) error {
	all := []int{ports.Price, ports.Market, ports.Trade, ports.Inquiry, ports.Streaming, ports.Execution}
	seen := make(map[int]bool, len(all))
	for _, port := range all {
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid config: port %d out of range", port)
		}
		if seen[port] {
			return fmt.Errorf("invalid config: duplicate port %d", port)
		}
		seen[port] = true
	}
	return nil
}
