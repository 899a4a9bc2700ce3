package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/estante-app/estante/config"
	"github.com/estante-app/estante/log"
	"github.com/estante-app/estante/server"
	"github.com/estante-app/estante/store"
	"github.com/estante-app/estante/store/kv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
███████ ███████ ████████  █████  ███    ██ ████████ ███████
██      ██         ██    ██   ██ ████   ██    ██    ██
█████   ███████    ██    ███████ ██ ██  ██    ██    █████
██           ██    ██    ██   ██ ██  ██ ██    ██    ██
███████ ███████    ██    ██   ██ ██   ████    ██    ███████
`
)

var (
	configFile string
	host       string
	port       int
	data       string

	rootCmd = &cobra.Command{
		Use:   "estante",
		Short: "Estante is a personal book-tracking service",
		Run: func(cmd *cobra.Command, args []string) {
			opts, err := config.GetConfig()
			if err != nil {
				println("Error loading config:", err.Error())
				os.Exit(1)
			}
			if configFile != "" {
				if opts, err = config.ParseFile(configFile); err != nil {
					println("Error parsing config file:", err.Error())
					os.Exit(1)
				}
			}
			if host != "" {
				opts.Host = host
			}
			if port != 0 {
				opts.Port = port
			}
			if data != "" {
				opts.Data = data
				opts.DSN = filepath.Join(data, "estante.db")
			}

			log.Logger = log.NewLogger()
			defer log.Logger.Sync()

			println(greetingBanner)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			db, err := kv.Open(opts.DSN)
			if err != nil {
				log.Error("Error opening database", zap.Error(err))
				return
			}
			defer db.Close()

			s := store.NewStore(db)
			if err := s.Ping(); err != nil {
				log.Error("Error pinging database", zap.Error(err))
				return
			}

			srv, err := server.StartServer(ctx, s)
			if err != nil {
				log.Error("Error starting server", zap.Error(err))
				return
			}
			log.Info("Server started",
				zap.String("host", opts.Host),
				zap.Int("port", opts.Port),
				zap.String("data", opts.Data),
			)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			log.Info("Shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Error shutting down server", zap.Error(err))
			}
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the config file")
	rootCmd.Flags().StringVar(&host, "host", "", "host to listen on")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on")
	rootCmd.Flags().StringVarP(&data, "data", "d", "", "data directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
