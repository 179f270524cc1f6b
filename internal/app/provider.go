package app

import (
	"github.com/ferdiebergado/sulat/internal/admin"
	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/letter"
	"github.com/ferdiebergado/sulat/internal/notify"
	"github.com/ferdiebergado/sulat/internal/platform/hash"
	"github.com/ferdiebergado/sulat/internal/platform/jwt"
	"github.com/ferdiebergado/sulat/internal/platform/router"
	"github.com/ferdiebergado/sulat/internal/platform/validation"
)

type Provider struct {
	Repo      letter.Repository
	Roster    letter.Roster
	Broker    *notify.Broker
	Guard     *admin.Guard
	Signer    jwt.Signer
	Validator validation.Validator
	Hasher    hash.Hasher
	Router    router.Router
}

func newProvider(cfg *config.Config, securityKey string, repo letter.Repository, r letter.Roster, hasher hash.Hasher) *Provider {
	signer := jwt.NewGolangJWTSigner(&cfg.JWT, securityKey)

	return &Provider{
		Repo:      repo,
		Roster:    r,
		Broker:    notify.NewBroker(cfg.Notifier.BufferSize),
		Guard:     admin.NewGuard(cfg.Admin.Key, signer, cfg.Admin.TokenTTL.Duration),
		Signer:    signer,
		Validator: validation.NewGoPlaygroundValidator(),
		Hasher:    hasher,
		Router:    router.NewGoexpressRouter(),
	}
}
