package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"emulated-hue/internal/adapters/input/http"
	"emulated-hue/internal/adapters/input/ssdp"
	"emulated-hue/internal/adapters/output/homeassistant"
	"emulated-hue/internal/adapters/output/persistence"
	"emulated-hue/internal/domain/model"
	"emulated-hue/internal/domain/service"
	"emulated-hue/internal/ports"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Emulated Philips Hue bridge for Home Assistant",
	Long: `bridge exposes Home Assistant entities as Philips Hue lights so that
voice assistants and Hue clients on the local network can control them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.RunE = runServe
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "Config file path (env: CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configPath() string {
	if !rootCmd.PersistentFlags().Changed("config") {
		if p := os.Getenv("CONFIG_PATH"); p != "" {
			return p
		}
	}
	return flagConfig
}

// loadConfig reads the configuration and sets up logging from it.
func loadConfig(ctx context.Context) (*model.Config, error) {
	var repo ports.ConfigRepository = persistence.NewYAMLConfigRepository(configPath())
	cfg, err := repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	setupLogging(cfg.Log)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.HostIP == "" {
		cfg.HostIP = getLocalIP()
	}
	if cfg.HostIP == "" {
		return fmt.Errorf("could not determine local IP, set host_ip or LOCAL_IP")
	}

	log.Info().
		Str("ip", cfg.HostIP).
		Int("port", cfg.ListenPort).
		Str("type", string(cfg.Type)).
		Msg("Starting emulated Hue bridge")

	numbers, closeNumbers, err := openNumberStore(cfg.IDs)
	if err != nil {
		return err
	}
	defer closeNumbers()

	haClient := homeassistant.NewClient(
		cfg.HomeAssistant.Timeout.Duration(),
		cfg.HomeAssistant.StateCacheTTL.Duration(),
		cfg.HomeAssistant.RateLimitRPS,
	)
	haClient.Configure(cfg.HomeAssistant.URL, cfg.HomeAssistant.Token)
	if !haClient.IsConfigured() {
		log.Warn().Msg("Home Assistant url or token missing, no lights will be exposed")
	}

	bridgeService := service.NewBridgeService(cfg, haClient, numbers, persistence.NewMemoryOverrideStore())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ssdpServer := ssdp.NewServer(cfg.AdvertisedIP(), cfg.AdvertisedPort(), *cfg.UPnPBindMulticast)
		if err := ssdpServer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("SSDP responder stopped")
		}
		return nil
	})
	g.Go(func() error {
		addr := net.JoinHostPort(cfg.HostIP, fmt.Sprint(cfg.ListenPort))
		return http.NewServer(bridgeService).ListenAndServe(ctx, addr)
	})

	err = g.Wait()
	log.Info().Msg("Bridge stopped")
	return err
}

// openNumberStore returns the configured number store and its closer.
func openNumberStore(cfg model.IDsConfig) (ports.NumberStore, func(), error) {
	switch cfg.Backend {
	case model.NumberBackendSQLite:
		store, err := persistence.OpenSQLiteNumberStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case model.NumberBackendJSON, "":
		return persistence.NewJSONNumberStore(cfg.Path), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown ids backend %q", cfg.Backend)
	}
}

func getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return ""
}
