package demo

import (
	"io"

	"github.com/sghaida/creational/internal/config"
	"github.com/sghaida/creational/internal/logger"
)

// NewRunner builds a Runner from cfg, logging to logOut.
func NewRunner(cfg config.Config, out, logOut io.Writer) (Runner, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return Runner{}, err
	}
	return Runner{
		Out:         out,
		Log:         logger.New(logOut, lvl),
		ScratchPath: cfg.ScratchPath(),
	}, nil
}

// FromEnv is NewRunner with configuration read from the environment.
func FromEnv(out, logOut io.Writer) (Runner, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return Runner{}, err
	}
	return NewRunner(cfg, out, logOut)
}
