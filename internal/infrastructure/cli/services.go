package cli

import (
	"math/rand"
	"time"

	"github.com/projectdarkstar/darkstar/internal/application"
	"github.com/projectdarkstar/darkstar/internal/infrastructure/config"
	"github.com/projectdarkstar/darkstar/internal/infrastructure/content"
	"github.com/projectdarkstar/darkstar/internal/infrastructure/storage"
)

// services is the wired application stack the commands run against.
type services struct {
	Config   config.Config
	Loader   *content.Loader
	Saves    *storage.FilesystemRepository
	Game     *application.GameService
	Doors    *application.DoorService
	Repairs  *application.RepairService
	Commands *application.CommandProcessor
}

// loadServices resolves the darkstar home, reads its config and wires the
// application services. dataDir overrides the content directory from the
// command line; an empty string falls back to config, then embedded data.
func loadServices(dataDir string) (*services, error) {
	home := homeFlag
	if home == "" {
		var err error
		home, err = config.DefaultHome()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	loader := content.NewLoader(cfg.DataDir)
	saves := storage.NewFilesystemRepository(cfg.Home)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	game := application.NewGameService(loader, saves, cfg.CrewCount, cfg.StartRoomID, rng)
	game.ConfigureLifeSupport(cfg.ScrubberEff, cfg.OxygenGenEff, cfg.ThermalEff)
	doors := application.NewDoorService()
	repairs := application.NewRepairService()

	return &services{
		Config:   cfg,
		Loader:   loader,
		Saves:    saves,
		Game:     game,
		Doors:    doors,
		Repairs:  repairs,
		Commands: application.NewCommandProcessor(game, doors, repairs),
	}, nil
}
