package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ItsNotGoodName/webdesk/internal/build"
	"github.com/ItsNotGoodName/webdesk/internal/bus"
	"github.com/ItsNotGoodName/webdesk/internal/config"
	"github.com/ItsNotGoodName/webdesk/internal/core"
	"github.com/ItsNotGoodName/webdesk/internal/web"
	"github.com/ItsNotGoodName/webdesk/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug      bool   `doc:"enable debug"`
	Host       string `doc:"host to listen on"`
	Port       int    `doc:"port to listen on" default:"8080"`
	Config     string `doc:"config file, .json or .yaml" default:".webdesk.yaml"`
	DumpConfig bool   `doc:"print the normalized config and exit"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewDriver(configFilePath))
			if err != nil {
				return err
			}

			if err := config.Normalize(&store); err != nil {
				return err
			}

			if options.DumpConfig {
				cfg, err := store.GetConfig()
				if err != nil {
					return err
				}
				pp.Println(cfg)
				return nil
			}

			slog.Info("Starting webdesk", "version", build.Current.String(), "config", configFilePath)

			sessions := web.NewSessions().Register()
			router, err := web.NewRouter(web.NewHandler(&store, sessions))
			if err != nil {
				return fmt.Errorf("router: %w", err)
			}

			super := sutureext.New("root")
			sutureext.Add(super, web.NewServer(core.Address(options.Host, options.Port), router))

			return super.Serve(ctx)
		})
	})

	cli.Root().Version = build.Current.String()

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
