package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/establishment/model"
	"courtside/internal/domains/establishment/model/dto"
	"courtside/internal/domains/establishment/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	"courtside/shared/failure"
)

const (
	cacheGetEstablishment = "establishment:get"
)

type Establishment interface {
	Get(ctx context.Context, id string) (dto.EstablishmentResponse, error)
	Policy(ctx context.Context, id string) (model.Establishment, error)
}

type serviceImpl struct {
	repo  repository.Establishment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Establishment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Establishment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EstablishmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEstablishment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for establishment")

		return res, nil
	}

	establishment, err := s.Policy(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(establishment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save establishment to cache")
		}
	}()

	return res, nil
}

// Policy loads the establishment with its cancellation and refund
// configuration. Used by the booking and recurring services before
// policy-sensitive mutations.
func (s *serviceImpl) Policy(ctx context.Context, id string) (res model.Establishment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Policy")
	defer scope.End()
	defer scope.TraceIfError(err)

	establishment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get establishment")

		return res, fmt.Errorf("failed to get establishment: %w", err)
	}

	if establishment.ID == constant.Empty {
		return res, failure.NotFound("establishment not found") // nolint:wrapcheck
	}

	return establishment, nil
}
