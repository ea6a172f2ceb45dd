// Command configstyles wires a data source and a customer service using the
// registration style named by the active profile, then checks that exactly
// one of each exists.
//
//	configstyles -profiles jc
//	APP_PROFILES=xml configstyles -xml ./beans.xml
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/km-arc/go-beans/framework/app"
	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/framework/logging"
	"github.com/km-arc/go-beans/internal/profile"
	"github.com/km-arc/go-beans/internal/styles"
)

func main() {
	cfg := config.Load()
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configstyles:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("configstyles failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// parseFlags applies command line overrides to cfg.
func parseFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("configstyles", flag.ContinueOnError)
	profiles := fs.String("profiles", "", "comma-separated active profiles, e.g. jc (overrides APP_PROFILES)")
	fs.StringVar(&cfg.Resources.PropertiesPath, "properties", cfg.Resources.PropertiesPath, "bean definitions properties file (default: embedded)")
	fs.StringVar(&cfg.Resources.XMLPath, "xml", cfg.Resources.XMLPath, "bean definitions XML file (default: embedded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *profiles != "" {
		cfg.App.Profiles = config.SplitProfiles(*profiles)
	}
	return nil
}

func run(cfg *config.Config, logger *zap.Logger) (err error) {
	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	profiles := profile.NewSet(cfg.App.Profiles...)
	if _, _, err := styles.Install(application, profiles, styles.DefaultSources(cfg.Resources), logger); err != nil {
		return err
	}
	if err := application.Boot(); err != nil {
		return err
	}

	beans, err := styles.Confirm(application.Container)
	if err != nil {
		return err
	}
	logger.Info("beans confirmed",
		zap.Stringer("profiles", profiles),
		zap.Stringer("dataSource", beans.DataSource),
		zap.String("label", beans.CustomerService.Label()))
	return nil
}
