package main

import (
	"context"
	"os"

	"github.com/agbru/fibkm/internal/app"
	apperrors "github.com/agbru/fibkm/internal/errors"
	"github.com/agbru/fibkm/internal/ui"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		ui.InitTheme(false, os.Stderr)
		os.Exit(apperrors.HandleError(err, os.Stderr, ui.ColorProvider{}))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
