// File: cocoliving/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cocoliving/api"
	"cocoliving/cli"
	"cocoliving/config"
	"cocoliving/session"
	"cocoliving/storage"
	"cocoliving/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	// Storage tiers: tokens prefer the OS keyring, then an encrypted
	// file, then plain file storage; the profile blob is not secret and
	// lives in plain file storage directly.
	dir := config.AppConfig.StorageDir
	secure := storage.NewTiered(
		storage.NewKeyringBackend(utils.KeyringService),
		storage.NewSecureFileBackend(dir),
		storage.NewFileBackend(dir),
	)
	general := storage.NewFileBackend(dir)

	sessions := session.NewManager(secure, general)
	if sess := sessions.Load(); sess != nil {
		logger.Sugar().Debugf("restored session for %s", sess.FullName)
	}

	client := api.NewClient(sessions, api.EnsureDeviceID(general))

	// Cancel in-flight work on Ctrl-C instead of letting requests finish
	// against state nobody will look at.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, &cli.App{Sessions: sessions, Client: client}); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
