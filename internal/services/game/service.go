// Package game is the command layer over the game document. Every mutating
// operation loads the document once, applies one change and saves once.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/repositories/games"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	"go.uber.org/zap"
)

// Repository is an alias for the game document repository interface
type Repository = games.Repository

// Service defines the game command interface
type Service interface {
	// InitializeGame builds a new game from seed files and stores it
	InitializeGame(ctx context.Context, input *InitializeGameInput) (*gamedomain.Game, error)

	// GetGame returns the stored game
	GetGame(ctx context.Context) (*gamedomain.Game, error)

	// SetFlag sets a global switch, or toggles it when value is nil
	SetFlag(ctx context.Context, flag gamedomain.Flag, value *bool) (bool, error)

	// AddPlayer registers a new player
	AddPlayer(ctx context.Context, player gamedomain.Player) error

	// KillPlayer marks a player dead or alive
	KillPlayer(ctx context.Context, id gamedomain.ID, dead bool) error

	// CreateParty adds an empty party bound to a channel
	CreateParty(ctx context.Context, name string, maxSize int, channel gamedomain.ID) error

	// AddPartyPlayer moves a player into a party without game gates
	AddPartyPlayer(ctx context.Context, channel, id gamedomain.ID) (*PartyChange, error)

	// RemovePartyPlayer takes a player out of their party without game gates
	RemovePartyPlayer(ctx context.Context, id gamedomain.ID) (*PartyChange, error)

	// JoinParty is the player-initiated party move
	JoinParty(ctx context.Context, id, channel gamedomain.ID) (*PartyChange, error)

	// LeaveParty is the player-initiated party exit
	LeaveParty(ctx context.Context, id gamedomain.ID) (*PartyChange, error)

	// CreateRound opens the next round and returns its number
	CreateRound(ctx context.Context, channel, reportMessage gamedomain.ID) (int, error)

	// EndRound closes the active round and returns its number
	EndRound(ctx context.Context) (int, error)

	// CastRoundVote records, replaces or withdraws a round vote
	CastRoundVote(ctx context.Context, voter gamedomain.ID, choice gamedomain.Choice) (*VoteReport, error)

	// RoundReport tallies a round; zero selects the latest round
	RoundReport(ctx context.Context, number int) (*VoteReport, error)

	// CreateDilemma adds an inactive dilemma to the active round
	CreateDilemma(ctx context.Context, name string, channel, reportMessage gamedomain.ID) error

	// SetDilemmaActive opens or pauses voting on a dilemma
	SetDilemmaActive(ctx context.Context, name string, active bool) error

	// CloseDilemmas permanently closes every dilemma of the latest round
	CloseDilemmas(ctx context.Context) (int, error)

	// UpdateDilemmaPlayer adds or removes an eligible voter
	UpdateDilemmaPlayer(ctx context.Context, name string, id gamedomain.ID, add bool) error

	// MassUpdateDilemmaPlayers adds or removes many voters, skipping
	// ids that are not registered players
	MassUpdateDilemmaPlayers(ctx context.Context, name string, ids []gamedomain.ID, add bool) (int, error)

	// UpdateDilemmaChoice adds or removes a choice
	UpdateDilemmaChoice(ctx context.Context, name, choice string, add bool) error

	// CastDilemmaVote records, replaces or withdraws a dilemma vote
	CastDilemmaVote(ctx context.Context, name string, voter gamedomain.ID, choice gamedomain.Choice) (*VoteReport, error)

	// DilemmaReport tallies a dilemma of the latest round
	DilemmaReport(ctx context.Context, name string) (*VoteReport, error)

	// ModifyResource adds delta to a resource, clamped to its bounds.
	// An undefined resource is logged and reported as not applied.
	ModifyResource(ctx context.Context, id gamedomain.ID, name string, delta int) (*Adjustment, error)

	// ModifyAttribute adds delta to an attribute level, clamped to its bounds
	ModifyAttribute(ctx context.Context, id gamedomain.ID, name string, delta int) (*Adjustment, error)

	// TransferResource moves an amount of a commodity between players
	TransferResource(ctx context.Context, input *TransferInput) error

	// TransferItem moves an item between players
	TransferItem(ctx context.Context, input *TransferInput) error

	// GiveItem copies a catalog item to a player
	GiveItem(ctx context.Context, id gamedomain.ID, name string) error

	// TakeItem removes an item from a player
	TakeItem(ctx context.Context, id gamedomain.ID, name string) error

	// GiveAction copies a catalog action to a player
	GiveAction(ctx context.Context, id gamedomain.ID, name string) error

	// TakeAction removes an action from a player
	TakeAction(ctx context.Context, id gamedomain.ID, name string) error

	// AdjustActionUses changes the remaining uses of a limited action
	AdjustActionUses(ctx context.Context, id gamedomain.ID, name string, delta int) (int, error)

	// SubmitAction spends a use and pays the costs of an action
	SubmitAction(ctx context.Context, id gamedomain.ID, name string) (*catalog.Action, error)

	// EquipItem equips or unequips a carried item
	EquipItem(ctx context.Context, id gamedomain.ID, name string, equip bool) error

	// TriggerDailyIncome runs one income tick for every player
	TriggerDailyIncome(ctx context.Context) ([]gamedomain.ResourceNotice, error)

	// RefreshCatalog replaces the catalog actions and items from seed files
	RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) error

	// AddPIView records a persistent view whose messages were just posted
	AddPIView(ctx context.Context, view gamedomain.PIView) error

	// RemovePIView forgets a player-info view
	RemovePIView(ctx context.Context, name string) (*gamedomain.PIView, error)
}

// InitializeGameInput contains data for building a new game
type InitializeGameInput struct {
	Paths     seed.Paths
	Overwrite bool // Replace an existing game instead of failing
}

// RefreshCatalogInput names the files the catalog is reloaded from
type RefreshCatalogInput struct {
	ActionsPath string // Required
	ItemsPath   string // Optional, items are left alone when empty
}

// TransferInput contains data for moving a resource or item
type TransferInput struct {
	From     gamedomain.ID
	To       gamedomain.ID
	Name     string
	Amount   int  // Resources only
	ByPlayer bool // Apply the player gates: active game, open lock, living sender
}

// PartyChange reports where a player ended up
type PartyChange struct {
	Joined string // Party joined, empty when leaving
	Left   string // Party left, empty when the player had none
}

// Adjustment reports the outcome of a clamped change
type Adjustment struct {
	Applied bool
	Value   int
}

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}

// service implements the Service interface
type service struct {
	mu           sync.Mutex
	repository   Repository
	loader       *seed.Loader
	timeProvider TimeProvider
	logger       *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository   Repository   // Required
	Loader       *seed.Loader // Optional, will use default if nil
	TimeProvider TimeProvider // Optional, will use the system clock if nil
	Logger       *zap.Logger  // Optional, will use a no-op logger if nil
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:   cfg.Repository,
		loader:       cfg.Loader,
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	svc.logger = svc.logger.Named("game-service")
	if svc.loader == nil {
		svc.loader = seed.NewLoader(&seed.LoaderConfig{Logger: svc.logger})
	}
	if svc.timeProvider == nil {
		svc.timeProvider = systemTime{}
	}

	return svc
}

// errUnchanged lets a mutation finish without saving
var errUnchanged = errors.New("game unchanged")

// update runs one load-mutate-save cycle. A failing mutation saves nothing.
func (s *service) update(ctx context.Context, op string, mutate func(g *gamedomain.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, version, err := s.repository.Load(ctx)
	if err != nil {
		return apperr.Wrapf(err, "failed to load game for %s", op)
	}

	if err := mutate(g); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		s.logger.Debug("operation rejected", zap.String("operation", op), zap.Error(err))
		return err
	}

	if _, err := s.repository.Save(ctx, g, version); err != nil {
		if apperr.IsConcurrentModification(err) {
			s.logger.Warn("game changed by another writer", zap.String("operation", op))
		}
		return apperr.Wrapf(err, "failed to save game after %s", op)
	}

	s.logger.Info("game updated", zap.String("operation", op))
	return nil
}

// view loads the game for a read-only operation
func (s *service) view(ctx context.Context, op string) (*gamedomain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, _, err := s.repository.Load(ctx)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to load game for %s", op)
	}
	return g, nil
}

func (s *service) now() int64 {
	return s.timeProvider.Now().Unix()
}

// GetGame returns the stored game
func (s *service) GetGame(ctx context.Context) (*gamedomain.Game, error) {
	return s.view(ctx, "get game")
}

// InitializeGame builds a new game from seed files and stores it
func (s *service) InitializeGame(ctx context.Context, input *InitializeGameInput) (*gamedomain.Game, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	g, err := s.loader.BuildGame(ctx, input.Paths)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to build game")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repository.Exists(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to check for existing game")
	}
	expected := games.NoVersion
	if exists {
		if !input.Overwrite {
			return nil, apperr.AlreadyExistsf("a game already exists")
		}
		expected = games.AnyVersion
	}

	if _, err := s.repository.Save(ctx, g, expected); err != nil {
		return nil, apperr.Wrap(err, "failed to save new game")
	}

	s.logger.Info("game initialized",
		zap.Int("players", len(g.Players)),
		zap.Int("parties", len(g.Parties)),
		zap.Bool("overwrite", exists))
	return g, nil
}

// RefreshCatalog replaces the catalog actions and items from seed files
func (s *service) RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) error {
	if input == nil || input.ActionsPath == "" {
		return apperr.InvalidArgument("actions file is required")
	}

	actions, err := s.loader.ReadActionsFile(input.ActionsPath)
	if err != nil {
		return apperr.Wrap(err, "failed to read actions file")
	}
	var items []catalog.Item
	if input.ItemsPath != "" {
		items, err = s.loader.ReadItemsFile(input.ItemsPath, seed.MapActions(actions))
		if err != nil {
			return apperr.Wrap(err, "failed to read items file")
		}
	}
	if actions == nil {
		actions = []catalog.Action{}
	}

	return s.update(ctx, "refresh catalog", func(g *gamedomain.Game) error {
		if err := g.ReplaceCatalogActions(actions); err != nil {
			return err
		}
		if input.ItemsPath == "" {
			return nil
		}
		if items == nil {
			items = []catalog.Item{}
		}
		return g.ReplaceCatalogItems(items)
	})
}
