// Package main provides the entry point for the Hue color daemon.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shini4i/hue-colord/internal/brightness"
	"github.com/shini4i/hue-colord/internal/color"
	"github.com/shini4i/hue-colord/internal/dbus"
	"github.com/shini4i/hue-colord/internal/entity"
)

// newRootCmd builds the command tree. The root command runs the D-Bus daemon.
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "hue-colord",
		Short: "D-Bus daemon for rendering Philips Hue colors",
		Long: `hue-colord is a D-Bus service that converts Philips Hue light state
into display colors for desktop shell extensions.

It converts CIE xy chromaticity values to sRGB hex colors within the
light's color gamut, dims colors by brightness, converts color
temperatures and maps room and light archetypes to icon names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newXYCmd(), newDimCmd(), newIconCmd(), newMirekCmd())
	return rootCmd
}

func configureLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func run() error {
	log.Info().Msg("Starting hue-colord")

	server := dbus.NewServer(color.NewConverter())
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start D-Bus server: %w", err)
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Msg("Daemon running, press Ctrl+C to stop")
	<-sigChan

	log.Info().Msg("Shutting down...")
	if err := server.Stop(); err != nil {
		log.Error().Err(err).Msg("Failed to stop D-Bus server")
	}

	log.Info().Msg("Daemon stopped")
	return nil
}

func newXYCmd() *cobra.Command {
	var (
		bri   float64
		gamut string
	)

	cmd := &cobra.Command{
		Use:   "xy X Y",
		Short: "Convert a CIE xy color to an sRGB hex string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloat("y", args[1])
			if err != nil {
				return err
			}

			res, err := color.NewConverter().Convert(x, y, bri, color.GamutType(gamut))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Hex)
			return err
		},
	}

	cmd.Flags().Float64VarP(&bri, "brightness", "b", color.DefaultBrightness, "Brightness (0-1)")
	cmd.Flags().StringVarP(&gamut, "gamut", "g", string(color.DefaultGamut), "Hue color gamut (A, B or C)")
	return cmd
}

func newDimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dim COLOR PERCENT",
		Short: "Dim a #rrggbb color by a brightness percentage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorful.Hex(args[0])
			if err != nil {
				return fmt.Errorf("invalid color %q: %w", args[0], err)
			}
			percent, err := parseFloat("percent", args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), brightness.DimColor(c, percent).Hex())
			return err
		},
	}
}

func newIconCmd() *cobra.Command {
	var deviceIcons bool

	cmd := &cobra.Command{
		Use:   "icon TYPE ARCHETYPE",
		Short: "Print the icon name for a Hue room or light archetype",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon := entity.Icon(entity.Type(args[0]), args[1], deviceIcons)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), icon)
			return err
		},
	}

	cmd.Flags().BoolVar(&deviceIcons, "device-icons", true, "Use archetype specific icons")
	return cmd
}

func newMirekCmd() *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "mirek VALUE",
		Short: "Convert a color temperature from mirek to kelvin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid temperature %q: %w", args[0], err)
			}

			convert := brightness.MirekToKelvin
			if reverse {
				convert = brightness.KelvinToMirek
			}
			result, err := convert(uint32(v))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Convert kelvin to mirek instead")
	return cmd
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("Failed to execute command")
	}
}
