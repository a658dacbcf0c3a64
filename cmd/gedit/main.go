// Command gedit is an interactive raster editor driven by single-letter
// commands read from standard input.
//
//	I M N        create an M x N image, every pixel O
//	C            clear the image back to O
//	L X Y C      colour pixel (X,Y) with C
//	V X Y1 Y2 C  draw a vertical segment in column X
//	H X1 X2 Y C  draw a horizontal segment in row Y
//	F X Y C      fill the region containing (X,Y) with C
//	S            show the image
//	X            exit
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/32bitkid/gedit/command"
	"github.com/32bitkid/gedit/display"
	"github.com/32bitkid/gedit/internal/config"
	"github.com/32bitkid/gedit/screen"
)

const banner = `#########################################
#########################################
Welcome to the Schonberg Graphical Editor
#########################################
#########################################

`

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("session ended")
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logrus.Logger, in io.Reader, out io.Writer) error {
	entry := log.WithField("session", uuid.NewString())
	entry.WithFields(logrus.Fields{
		"color":      cfg.Color,
		"assume_yes": cfg.AssumeYes,
	}).Info("starting session")

	if cfg.Banner {
		if _, err := io.WriteString(out, banner); err != nil {
			return err
		}
	}

	opts := command.Options{Logger: entry}
	if cfg.Color {
		opts.Renderer = display.ANSI{}
	}
	if cfg.AssumeYes {
		opts.Confirmer = command.AlwaysConfirm
	}

	err := command.NewSession(in, out, screen.NewCanvas(), opts).Run()
	if err == nil {
		entry.Info("session closed")
	}
	return err
}
